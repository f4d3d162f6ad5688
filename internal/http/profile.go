package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"food-donate/internal/domain"
	"food-donate/internal/service"
)

type profilePage struct {
	LayoutData
	Profile *domain.UserProfile
}

type staleSessionPage struct {
	LayoutData
	LoginPath string
}

func (h *Handler) showProfile(c *gin.Context) {
	session, ok := SessionFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, h.loginRedirect(c.Request.URL.Path))
		return
	}

	profile, err := h.profiles.GetBySession(c.Request.Context(), session.ID)
	switch {
	case errors.Is(err, service.ErrStaleSession):
		h.render(c, http.StatusNotFound, pageStaleSession, staleSessionPage{
			LayoutData: LayoutData{Title: "User Profile", Active: "profile"},
			LoginPath:  h.loginRedirect(c.Request.URL.Path),
		})
	case err != nil:
		h.logger.WithError(err).Error("load profile")
		h.renderFailure(c, http.StatusInternalServerError, "We could not load your profile right now. Please try again later.")
	default:
		h.render(c, http.StatusOK, pageProfile, profilePage{
			LayoutData: LayoutData{Title: "User Profile", Active: "profile"},
			Profile:    profile,
		})
	}
}

func (h *Handler) loginRedirect(returnTo string) string {
	return h.loginPath + "?redirect=" + url.QueryEscape(returnTo)
}
