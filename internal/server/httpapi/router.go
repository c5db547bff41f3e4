package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundacionraices/backend/internal/logging"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/services"
)

// Handlers bundles the services the HTTP layer dispatches into.
type Handlers struct {
	Auth       *services.AuthService
	Users      *services.UserService
	News       *services.NewsService
	Sponsors   *services.SponsorService
	Partners   *services.PartnerService
	Donations  *services.DonationService
	Events     *services.EventService
	Volunteers *services.VolunteerService
	Workshops  *services.WorkshopService
	Benefits   *services.BenefitService
	Kitchens   *services.CommunityKitchenService
	Proposals  *services.ProposalService
	Storage    *services.StorageService
}

// NewRouter builds the full route tree. Reads are public; writes sit behind
// the authn guard and, for administrative operations, the Admin role gate.
func NewRouter(h *Handlers, db *sql.DB, jwtSecret []byte, log logging.Logger) http.Handler {
	r := chi.NewRouter()

	authn := Authn(jwtSecret)
	adminOnly := RequireRoles(h.Users, log, models.RoleAdmin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/signin", h.signin)
		r.Post("/auth/google", h.googleSignin)

		r.Get("/news", h.listNews)
		r.Get("/news/{id}", h.getNews)
		r.Get("/sponsors", h.listSponsors)
		r.Get("/sponsors/{id}", h.getSponsor)
		r.Get("/partners", h.listPartners)
		r.Get("/partners/{id}", h.getPartner)
		r.Get("/events", h.listEvents)
		r.Get("/events/{id}", h.getEvent)
		r.Get("/workshops", h.listWorkshops)
		r.Get("/workshops/{id}", h.getWorkshop)
		r.Get("/benefits", h.listBenefits)
		r.Get("/benefits/{id}", h.getBenefit)
		r.Get("/kitchens", h.listKitchens)
		r.Get("/kitchens/{id}", h.getKitchen)

		r.Post("/donations", h.createDonation)

		// Any signed-in user.
		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Post("/volunteers", h.enrollVolunteer)
			r.Post("/proposals", h.createProposal)
			r.Get("/donations/mine", h.myDonations)
			r.Post("/storage/upload-url", h.uploadURL)
			r.Get("/storage/download-url", h.downloadURL)
		})

		// Administrators only; roles checked against the store per request.
		r.Group(func(r chi.Router) {
			r.Use(authn, adminOnly)

			r.Post("/news", h.createNews)
			r.Delete("/news/{id}", h.deleteNews)
			r.Post("/sponsors", h.createSponsor)
			r.Delete("/sponsors/{id}", h.deleteSponsor)
			r.Post("/partners", h.createPartner)
			r.Delete("/partners/{id}", h.deletePartner)
			r.Post("/events", h.createEvent)
			r.Delete("/events/{id}", h.deleteEvent)
			r.Post("/workshops", h.createWorkshop)
			r.Delete("/workshops/{id}", h.deleteWorkshop)
			r.Post("/benefits", h.createBenefit)
			r.Delete("/benefits/{id}", h.deleteBenefit)
			r.Post("/kitchens", h.createKitchen)
			r.Delete("/kitchens/{id}", h.deleteKitchen)

			r.Get("/donations", h.listDonations)
			r.Get("/volunteers", h.listVolunteers)
			r.Post("/volunteers/{id}/events", h.assignVolunteerEvent)
			r.Get("/proposals", h.listProposals)
			r.Delete("/proposals/{id}", h.deleteProposal)

			r.Get("/users", h.listUsers)
			r.Get("/users/{id}", h.getUser)
			r.Post("/users/{id}/roles", h.grantRole)
			r.Delete("/users/{id}/roles", h.revokeRole)
		})
	})

	return r
}
