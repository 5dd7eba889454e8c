package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promorang/sampling-service/internal/domain"
	samplingdto "github.com/promorang/sampling-service/internal/usecase/dto/sampling"
)

type stubSamplingUsecase struct {
	stateFn       func(advertiserID string) (*samplingdto.StateOutput, error)
	createFn      func(input *samplingdto.CreateActivationInput) (*domain.SamplingActivation, error)
	participateFn func(input *samplingdto.RecordParticipationInput) (*domain.SamplingParticipation, error)
	redeemFn      func(participationID string, value float64) (*domain.SamplingParticipation, error)
	surfaceFn     func(surface string) ([]*domain.SamplingActivation, error)
}

func (s *stubSamplingUsecase) GetState(advertiserID string) (*samplingdto.StateOutput, error) {
	return s.stateFn(advertiserID)
}

func (s *stubSamplingUsecase) CheckEligibility(string) (*samplingdto.EligibilityOutput, error) {
	return &samplingdto.EligibilityOutput{Allowed: true}, nil
}

func (s *stubSamplingUsecase) CreateActivation(input *samplingdto.CreateActivationInput) (*domain.SamplingActivation, error) {
	return s.createFn(input)
}

func (s *stubSamplingUsecase) GetActivationMetrics(string) (*samplingdto.ActivationMetricsOutput, error) {
	return &samplingdto.ActivationMetricsOutput{}, nil
}

func (s *stubSamplingUsecase) RecordParticipation(input *samplingdto.RecordParticipationInput) (*domain.SamplingParticipation, error) {
	return s.participateFn(input)
}

func (s *stubSamplingUsecase) VerifyParticipation(string, string) (*domain.SamplingParticipation, error) {
	return &domain.SamplingParticipation{}, nil
}

func (s *stubSamplingUsecase) RecordRedemption(participationID string, value float64) (*domain.SamplingParticipation, error) {
	return s.redeemFn(participationID, value)
}

func (s *stubSamplingUsecase) CheckGraduationTriggers(string, string) (*samplingdto.GraduationResult, error) {
	return &samplingdto.GraduationResult{}, nil
}

func (s *stubSamplingUsecase) RequestGraduation(string, string) (*samplingdto.RequestGraduationOutput, error) {
	return &samplingdto.RequestGraduationOutput{}, nil
}

func (s *stubSamplingUsecase) GetGraduationOptions(string) (*samplingdto.GraduationOptionsOutput, error) {
	return &samplingdto.GraduationOptionsOutput{}, nil
}

func (s *stubSamplingUsecase) UpgradeToPaid(*samplingdto.UpgradeToPaidInput) error { return nil }

func (s *stubSamplingUsecase) GetActiveForSurface(surface string) ([]*domain.SamplingActivation, error) {
	return s.surfaceFn(surface)
}

func (s *stubSamplingUsecase) ExpireDueActivations(context.Context) error { return nil }

func newTestRouter(stub *stubSamplingUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSamplingHandler(stub).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestStateRequiresAdvertiserIdentity(t *testing.T) {
	r := newTestRouter(&stubSamplingUsecase{})

	w, envelope := doJSON(t, r, http.MethodGet, "/api/merchant-sampling/state", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Authentication required", envelope["error"])
}

func TestStateEnvelope(t *testing.T) {
	stub := &stubSamplingUsecase{
		stateFn: func(advertiserID string) (*samplingdto.StateOutput, error) {
			return &samplingdto.StateOutput{
				MerchantState: domain.StateNew,
				Visibility:    domain.VisibilityForState(domain.StateNew),
			}, nil
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/merchant-sampling/state", nil,
		map[string]string{"X-Advertiser-ID": "adv-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, "NEW", data["merchant_state"])
	visibility := data["visibility"].(map[string]any)
	assert.Equal(t, true, visibility["create_activation"])
}

func TestCreateActivationMapsValidationTo400(t *testing.T) {
	stub := &stubSamplingUsecase{
		createFn: func(*samplingdto.CreateActivationInput) (*domain.SamplingActivation, error) {
			return nil, domain.NewValidationError("Sampling duration must be between 7 and 14 days")
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/merchant-sampling/activation",
		gin.H{"name": "Free tasting", "value_type": "voucher", "duration_days": 3},
		map[string]string{"X-Advertiser-ID": "adv-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Sampling duration must be between 7 and 14 days", envelope["error"])
}

func TestCreateActivationStatus201(t *testing.T) {
	stub := &stubSamplingUsecase{
		createFn: func(input *samplingdto.CreateActivationInput) (*domain.SamplingActivation, error) {
			assert.Equal(t, "adv-1", input.AdvertiserID)
			return &domain.SamplingActivation{ID: "act-1", Status: domain.ActivationActive}, nil
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/merchant-sampling/activation",
		gin.H{"name": "Free tasting", "value_type": "voucher", "duration_days": 7},
		map[string]string{"X-Advertiser-ID": "adv-1"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, envelope["success"])
}

func TestParticipateRequiresUserIdentity(t *testing.T) {
	r := newTestRouter(&stubSamplingUsecase{})

	w, envelope := doJSON(t, r, http.MethodPost, "/api/merchant-sampling/participate",
		gin.H{"activation_id": "act-1", "action_type": "claim"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", envelope["error"])
}

func TestParticipateUsesHeaderIdentity(t *testing.T) {
	stub := &stubSamplingUsecase{
		participateFn: func(input *samplingdto.RecordParticipationInput) (*domain.SamplingParticipation, error) {
			assert.Equal(t, "user-1", input.UserID)
			return &domain.SamplingParticipation{ID: "p-1"}, nil
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/merchant-sampling/participate",
		gin.H{"activation_id": "act-1", "action_type": "claim"},
		map[string]string{"X-User-ID": "user-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
}

func TestRedeemMapsNotFoundTo404(t *testing.T) {
	stub := &stubSamplingUsecase{
		redeemFn: func(string, float64) (*domain.SamplingParticipation, error) {
			return nil, domain.ErrParticipationNotFound
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/merchant-sampling/redeem",
		gin.H{"participation_id": "missing"},
		map[string]string{"X-User-ID": "user-1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "participation not found", envelope["error"])
}

func TestActiveForSurfaceIsPublic(t *testing.T) {
	stub := &stubSamplingUsecase{
		surfaceFn: func(surface string) ([]*domain.SamplingActivation, error) {
			assert.Equal(t, "deals", surface)
			return []*domain.SamplingActivation{{ID: "act-1"}}, nil
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/merchant-sampling/active-for-surface/deals", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
}

func TestInternalErrorsHideDetails(t *testing.T) {
	stub := &stubSamplingUsecase{
		surfaceFn: func(string) ([]*domain.SamplingActivation, error) {
			return nil, assert.AnError
		},
	}
	r := newTestRouter(stub)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/merchant-sampling/active-for-surface/deals", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to load surface activations", envelope["error"])
}
