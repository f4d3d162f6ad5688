package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-donate/internal/domain"
	"food-donate/internal/service"
)

type donatePage struct {
	LayoutData
	FoodType string
	Quantity string
	Errors   map[string]string
}

type confirmationPage struct {
	LayoutData
	Donation *domain.DonationRequest
}

func (h *Handler) showDonateForm(c *gin.Context) {
	h.render(c, http.StatusOK, pageDonate, donatePage{
		LayoutData: LayoutData{Title: "Food Donation Form", Active: "donate"},
	})
}

func (h *Handler) submitDonation(c *gin.Context) {
	foodType := c.PostForm(service.FieldFoodType)
	quantity := c.PostForm(service.FieldQuantity)

	donation, err := h.donations.Submit(c.Request.Context(), foodType, quantity)
	if err != nil {
		if vErr, ok := service.IsValidationError(err); ok {
			h.render(c, http.StatusBadRequest, pageDonate, donatePage{
				LayoutData: LayoutData{Title: "Food Donation Form", Active: "donate"},
				FoodType:   foodType,
				Quantity:   quantity,
				Errors:     vErr.Fields,
			})
			return
		}

		h.logger.WithError(err).Error("submit donation")
		h.renderFailure(c, http.StatusInternalServerError, "We could not record your donation right now. Please try again later.")
		return
	}

	h.logger.WithField("donation_id", donation.ID).Info("donation recorded")
	h.render(c, http.StatusOK, pageConfirmation, confirmationPage{
		LayoutData: LayoutData{Title: "Thank You", Active: "donate"},
		Donation:   donation,
	})
}
