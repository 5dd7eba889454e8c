package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promorang/sampling-service/internal/delivery/httpapi/middleware"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
	samplinguc "github.com/promorang/sampling-service/internal/usecase/sampling"
)

type SamplingHandler struct {
	samplingUC samplinguc.SamplingUsecase
}

func NewSamplingHandler(samplingUC samplinguc.SamplingUsecase) *SamplingHandler {
	return &SamplingHandler{samplingUC: samplingUC}
}

func (h *SamplingHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/merchant-sampling")

	// Public surfaces.
	api.GET("/active-for-surface/:surface", h.ActiveForSurface)

	// User-facing interaction endpoints.
	user := api.Group("", middleware.UserIdentity())
	user.POST("/participate", h.Participate)
	user.POST("/verify", h.Verify)
	user.POST("/redeem", h.Redeem)

	// Merchant endpoints behind the gateway identity.
	merchant := api.Group("", middleware.AdvertiserAuth())
	merchant.GET("/state", h.State)
	merchant.GET("/eligibility", h.Eligibility)
	merchant.POST("/activation", h.CreateActivation)
	merchant.GET("/activation", h.ActivationMetrics)
	merchant.POST("/request-graduation", h.RequestGraduation)
	merchant.GET("/graduation-options", h.GraduationOptions)
	merchant.POST("/upgrade", h.Upgrade)
}

func (h *SamplingHandler) State(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	state, err := h.samplingUC.GetState(advertiserID)
	if err != nil {
		respondUsecaseError(c, err, "Failed to load merchant state")
		return
	}

	respondOK(c, state)
}

func (h *SamplingHandler) Eligibility(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	eligibility, err := h.samplingUC.CheckEligibility(advertiserID)
	if err != nil {
		respondUsecaseError(c, err, "Failed to check eligibility")
		return
	}

	respondOK(c, eligibility)
}

func (h *SamplingHandler) CreateActivation(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	var req createActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	activation, err := h.samplingUC.CreateActivation(&samplingdto.CreateActivationInput{
		AdvertiserID:       advertiserID,
		Name:               req.Name,
		Description:        req.Description,
		ValueType:          req.ValueType,
		ValueAmount:        req.ValueAmount,
		ValueUnit:          req.ValueUnit,
		MaxRedemptions:     req.MaxRedemptions,
		DurationDays:       req.DurationDays,
		IncludeInDeals:     req.IncludeInDeals,
		IncludeInEvents:    req.IncludeInEvents,
		IncludeInPostProof: req.IncludeInPostProof,
	})
	if err != nil {
		respondUsecaseError(c, err, "Failed to create activation")
		return
	}

	respondCreated(c, gin.H{
		"activation": activation,
		"message":    "Sampling activation created",
	})
}

func (h *SamplingHandler) ActivationMetrics(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	metrics, err := h.samplingUC.GetActivationMetrics(advertiserID)
	if err != nil {
		respondUsecaseError(c, err, "Failed to load activation metrics")
		return
	}

	respondOK(c, metrics)
}

func (h *SamplingHandler) Participate(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req participateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	participation, err := h.samplingUC.RecordParticipation(&samplingdto.RecordParticipationInput{
		ActivationID:      req.ActivationID,
		UserID:            userID,
		ActionType:        req.ActionType,
		UserMaturityState: req.UserMaturityState,
		Metadata:          req.Metadata,
	})
	if err != nil {
		respondUsecaseError(c, err, "Failed to record participation")
		return
	}

	respondOK(c, gin.H{"participation": participation})
}

func (h *SamplingHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	participation, err := h.samplingUC.VerifyParticipation(req.ParticipationID, req.VerificationMethod)
	if err != nil {
		respondUsecaseError(c, err, "Failed to verify participation")
		return
	}

	respondOK(c, gin.H{"participation": participation})
}

func (h *SamplingHandler) Redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	participation, err := h.samplingUC.RecordRedemption(req.ParticipationID, req.RedemptionValue)
	if err != nil {
		respondUsecaseError(c, err, "Failed to record redemption")
		return
	}

	respondOK(c, gin.H{"participation": participation})
}

func (h *SamplingHandler) RequestGraduation(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	var req requestGraduationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.samplingUC.RequestGraduation(advertiserID, req.RequestType)
	if err != nil {
		respondUsecaseError(c, err, "Failed to process graduation request")
		return
	}

	respondOK(c, result)
}

func (h *SamplingHandler) GraduationOptions(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	options, err := h.samplingUC.GetGraduationOptions(advertiserID)
	if err != nil {
		respondUsecaseError(c, err, "Failed to load graduation options")
		return
	}

	respondOK(c, options)
}

func (h *SamplingHandler) Upgrade(c *gin.Context) {
	advertiserID := c.GetString(middleware.AdvertiserIDKey)

	var req upgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.samplingUC.UpgradeToPaid(&samplingdto.UpgradeToPaidInput{
		AdvertiserID: advertiserID,
		PlanID:       req.PlanID,
		PlanDetails:  req.PlanDetails,
	}); err != nil {
		respondUsecaseError(c, err, "Failed to upgrade merchant")
		return
	}

	respondOK(c, gin.H{"message": "Merchant upgraded to paid plan"})
}

func (h *SamplingHandler) ActiveForSurface(c *gin.Context) {
	activations, err := h.samplingUC.GetActiveForSurface(c.Param("surface"))
	if err != nil {
		respondUsecaseError(c, err, "Failed to load surface activations")
		return
	}

	respondOK(c, gin.H{"activations": activations})
}
