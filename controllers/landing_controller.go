package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaba-landing/content"
	"github.com/jaba-landing/forms"
	"github.com/jaba-landing/landing"
	"github.com/jaba-landing/middleware"
	"github.com/jaba-landing/models"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/services"
	"github.com/jaba-landing/store"
	"github.com/jaba-landing/utils"
	"go.uber.org/zap"
)

const (
	pageTemplate = "index.tmpl"

	// signedUpCookie carries the role of a stored signup across the
	// redirect that follows a successful post
	signedUpCookie = "jaba_signed_up"
)

// LandingController serves the landing page and its HTML form posts
type LandingController struct {
	site     *content.Site
	inserter store.Inserter
	catalog  notify.Catalog
	inFlight *services.InFlight
	logger   *zap.Logger
}

// NewLandingController creates a new landing controller instance
func NewLandingController(site *content.Site, inserter store.Inserter, catalog notify.Catalog, inFlight *services.InFlight, logger *zap.Logger) *LandingController {
	return &LandingController{site: site, inserter: inserter, catalog: catalog, inFlight: inFlight, logger: logger}
}

// Index renders the landing page, mounting the form picked via ?role=
func (lc *LandingController) Index(c *gin.Context) {
	selection := landing.ParseSelection(c.Query("role"))
	form, _ := selection.Role()

	queue := notify.NewQueue(notify.DefaultLimit)
	if raw, err := c.Cookie(signedUpCookie); err == nil {
		c.SetCookie(signedUpCookie, "", -1, "/", "", false, true)
		if role, ok := parseRole(raw); ok {
			queue.Notify(lc.catalog.Success(role))
			if role == models.RoleConsumer {
				form = role
			}
		}
	}

	c.HTML(http.StatusOK, pageTemplate, Page{
		Site:          lc.site,
		Selection:     selection,
		Form:          string(form),
		Notifications: queue.Drain(),
	})
}

// Signup handles the form post for role
func (lc *LandingController) Signup(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := forms.New(role)
		if err != nil {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		if err := c.Request.ParseForm(); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form data")
			return
		}

		queue := notify.NewQueue(notify.DefaultLimit)
		if err := forms.Decode(form, c.Request.PostForm); err != nil {
			queue.Notify(lc.catalog.Invalid(role))
			lc.render(c, http.StatusUnprocessableEntity, role, form, queue, false)
			return
		}

		submission := services.NewSubmissionService(form, lc.inserter, queue,
			services.WithCatalog(lc.catalog),
			services.WithInFlight(lc.inFlight),
			services.WithLogger(lc.logger.With(zap.String("request_id", middleware.GetRequestID(c)))),
		)
		outcome, _ := submission.Submit(c.Request.Context())

		if outcome == services.OutcomeSuccess {
			// Redirect so a reload does not post the signup again
			c.SetCookie(signedUpCookie, string(role), 60, "/", "", false, true)
			selection, _ := landing.Initial().Select(role)
			c.Redirect(http.StatusSeeOther, "/?role="+selection.Query()+"#signup")
			return
		}
		// A post rejected because the same signup is in flight renders locked
		lc.render(c, utils.StatusForOutcome(outcome), role, form, queue, submission.Disabled())
	}
}

// Community sends the visitor to the community chat
func (lc *LandingController) Community(c *gin.Context) {
	if lc.site.Community.URL == "" {
		c.Redirect(http.StatusFound, "/#community")
		return
	}
	c.Redirect(http.StatusFound, lc.site.Community.URL)
}

func (lc *LandingController) render(c *gin.Context, status int, role models.Role, form forms.Form, queue *notify.Queue, disabled bool) {
	selection, _ := landing.Initial().Select(role)
	c.HTML(status, pageTemplate, Page{
		Site:          lc.site,
		Selection:     selection,
		Form:          string(role),
		Values:        form.Snapshot(),
		Disabled:      disabled,
		Notifications: queue.Drain(),
	})
}

func parseRole(raw string) (models.Role, bool) {
	switch role := models.Role(raw); role {
	case models.RoleFarmer, models.RoleBuyer, models.RoleConsumer:
		return role, true
	}
	return "", false
}
