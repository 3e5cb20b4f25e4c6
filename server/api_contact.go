package labstockserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	contactapp "github.com/labops/labstock/internal/domains/contact/application"
	contactdomain "github.com/labops/labstock/internal/domains/contact/domain"
	apierrors "github.com/labops/labstock/internal/shared/errors"
)

// ContactAPI accepts contact-form submissions.
type ContactAPI struct {
	service *contactapp.Service
}

// NewContactAPI creates a ContactAPI backed by the provided service.
func NewContactAPI(service *contactapp.Service) ContactAPI {
	return ContactAPI{service: service}
}

type contactFormPayload struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	RollNumber   string `json:"rollNumber"`
	SecurityCode string `json:"securityCode"`
	Message      string `json:"message"`
}

type receiptPayload struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

// Post /v1/contact
// Validate and acknowledge a contact-form submission
func (api *ContactAPI) SubmitMessage(c *gin.Context) {
	var payload contactFormPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	receipt, err := api.service.Submit(c.Request.Context(), contactdomain.Message{
		FullName:     payload.FullName,
		Email:        payload.Email,
		RollNumber:   payload.RollNumber,
		SecurityCode: payload.SecurityCode,
		Body:         payload.Message,
	})
	if err != nil {
		var validationErr *contactapp.ValidationError
		if errors.As(err, &validationErr) {
			apierrors.Respond(c, apierrors.NewValidationProblem(validationErr.Messages()))
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, receiptPayload{
		ID:          receipt.ID,
		SubmittedAt: receipt.SubmittedAt,
		Status:      receipt.Status,
	})
}
