package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lucky-draw-backend/internal/handler"
	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/service/mocks"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPrizeTierTestRouter(prizeTierService *mocks.MockPrizeTierService) *gin.Engine {
	router := newTestRouter()
	handler.NewPrizeTierHandler(prizeTierService).RegisterRoutes(router)
	return router
}

func TestSavePrizeTier(t *testing.T) {
	body := model.SavePrizeTierRequest{MatchType: model.TierGrand, TicketType: model.TicketTypeSuper, Prize: "iPhone 16"}

	t.Run("Success", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		prizeTierService.EXPECT().Save(mock.Anything, body).Return(&model.PrizeTier{ID: 1, MatchType: model.TierGrand}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/prize-tiers", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ValidationError", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		prizeTierService.EXPECT().Save(mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("match_type", "must be one of Grand, Silver, Bronze, Consolation")).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/prize-tiers", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "match_type", decodeBody(t, w.Body)["field"])
	})

	t.Run("Failed - missing prize", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		req := createJSONHTTPRequest("POST", "/api/v1/prize-tiers", map[string]string{"match_type": "Grand", "ticket_type": "super"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		prizeTierService.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUpdatePrizeTier(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		prizeTierService.EXPECT().Update(mock.Anything, 4, model.UpdatePrizeRequest{Prize: "Tote bag"}).
			Return(&model.PrizeTier{ID: 4, Prize: "Tote bag"}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/prize-tiers/4", model.UpdatePrizeRequest{Prize: "Tote bag"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrPrizeTierNotFound", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		prizeTierService.EXPECT().Update(mock.Anything, 42, mock.Anything).Return(nil, apperrors.ErrPrizeTierNotFound).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/prize-tiers/42", model.UpdatePrizeRequest{Prize: "Tote bag"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePrizeTier(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		prizeTierService.EXPECT().Delete(mock.Anything, 4).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/api/v1/prize-tiers/4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		prizeTierService := mocks.NewMockPrizeTierService(t)
		router := setupPrizeTierTestRouter(prizeTierService)

		req := httptest.NewRequest("DELETE", "/api/v1/prize-tiers/0", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		prizeTierService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
