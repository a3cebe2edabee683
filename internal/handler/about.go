// internal/handler/about.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TeamMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var teamMembers = []TeamMember{
	{FirstName: "Hadar", LastName: "Ben Zaken"},
	{FirstName: "Shoham", LastName: "Margalit"},
}

// About returns the team member list.
func (h *CostHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, teamMembers)
}
