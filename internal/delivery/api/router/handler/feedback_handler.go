package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
}

// FeedbackHandler serves event reviews.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
	}
}

// SubmitFeedback handles POST /events/:id/feedback. The optional userId
// query parameter must name the caller.
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}
	if author := c.QueryParam("userId"); author != "" && author != userID {
		return fail(c, domainerrors.ErrForbidden.WithDetails("feedback can only be submitted for yourself"))
	}

	var input usecase.SubmitFeedbackInput
	if err := bindBody(c, &input); err != nil {
		return fail(c, err)
	}

	feedback, err := h.feedbackUC.SubmitFeedback(c.Request().Context(), userID, c.Param("id"), &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusCreated, feedback)
}

// ListFeedback handles GET /events/:id/feedback
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	var page repository.Page
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}

	summary, err := h.feedbackUC.ListFeedback(c.Request().Context(), c.Param("id"), page)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
