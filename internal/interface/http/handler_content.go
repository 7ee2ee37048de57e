package http

import (
	"net/http"

	"offbeat-travels/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Body    string `json:"body" form:"body"`
}

// GetFAQ returns FAQ entries grouped by category.
func (h *Handler) GetFAQ(c echo.Context) error {
	grouped, err := h.content.FAQByCategory(c.Request().Context())
	if err != nil {
		return h.httpError(c, "list_faq", err)
	}

	out := make(map[string][]map[string]string, len(grouped))
	for category, faqs := range grouped {
		for _, faq := range faqs {
			out[category] = append(out[category], map[string]string{
				"question": faq.Question,
				"answer":   faq.Answer,
			})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// PostContact appends a contact message to the document store.
func (h *Handler) PostContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	msg := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := h.content.SubmitContact(c.Request().Context(), msg); err != nil {
		return h.httpError(c, "contact", err)
	}
	return c.NoContent(http.StatusAccepted)
}
