package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaba-landing/dto"
	"github.com/jaba-landing/forms"
	"github.com/jaba-landing/middleware"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/services"
	"github.com/jaba-landing/store"
	"github.com/jaba-landing/utils"
	"go.uber.org/zap"
)

// SignupController exposes the submission pipeline as JSON endpoints
type SignupController struct {
	inserter store.Inserter
	catalog  notify.Catalog
	inFlight *services.InFlight
	logger   *zap.Logger
}

// NewSignupController creates a new signup controller instance
func NewSignupController(inserter store.Inserter, catalog notify.Catalog, inFlight *services.InFlight, logger *zap.Logger) *SignupController {
	return &SignupController{inserter: inserter, catalog: catalog, inFlight: inFlight, logger: logger}
}

// CreateFarmer godoc
// @Summary Register a farmer
// @Tags signups
// @Accept json
// @Produce json
// @Param signup body dto.FarmerSignupRequest true "Farmer signup"
// @Success 201 {object} dto.SignupResponse
// @Failure 409 {object} dto.SignupResponse
// @Router /farmers [post]
func (sc *SignupController) CreateFarmer(c *gin.Context) {
	var req dto.FarmerSignupRequest
	if !sc.bind(c, &req) {
		return
	}
	form, err := req.ToForm()
	sc.submit(c, form, err)
}

// CreateBuyer godoc
// @Summary Register a buyer
// @Tags signups
// @Accept json
// @Produce json
// @Param signup body dto.BuyerSignupRequest true "Buyer signup"
// @Success 201 {object} dto.SignupResponse
// @Failure 409 {object} dto.SignupResponse
// @Router /buyers [post]
func (sc *SignupController) CreateBuyer(c *gin.Context) {
	var req dto.BuyerSignupRequest
	if !sc.bind(c, &req) {
		return
	}
	form, err := req.ToForm()
	sc.submit(c, form, err)
}

// CreateConsumer godoc
// @Summary Register a consumer (legacy table)
// @Tags signups
// @Accept json
// @Produce json
// @Param signup body dto.ConsumerSignupRequest true "Consumer signup"
// @Success 201 {object} dto.SignupResponse
// @Router /consumers [post]
func (sc *SignupController) CreateConsumer(c *gin.Context) {
	var req dto.ConsumerSignupRequest
	if !sc.bind(c, &req) {
		return
	}
	form, err := req.ToForm()
	sc.submit(c, form, err)
}

func (sc *SignupController) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fieldErrors := utils.BindingErrors(err)
		if fieldErrors == nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, dto.SignupResponse{
			Status:  "error",
			Outcome: string(services.OutcomeInvalid),
			Errors:  fieldErrors,
		})
		return false
	}
	return true
}

func (sc *SignupController) submit(c *gin.Context, form forms.Form, formErr error) {
	if formErr != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request data: "+formErr.Error())
		return
	}

	queue := notify.NewQueue(notify.DefaultLimit)
	submission := services.NewSubmissionService(form, sc.inserter, queue,
		services.WithCatalog(sc.catalog),
		services.WithInFlight(sc.inFlight),
		services.WithLogger(sc.logger.With(zap.String("request_id", middleware.GetRequestID(c)))),
	)

	outcome, _ := submission.Submit(c.Request.Context())

	resp := dto.SignupResponse{Status: "success", Outcome: string(outcome)}
	if outcome != services.OutcomeSuccess {
		resp.Status = "error"
	}
	if pending := queue.Drain(); len(pending) > 0 {
		resp.Notification = &pending[len(pending)-1]
	}
	c.JSON(utils.StatusForOutcome(outcome), resp)
}
