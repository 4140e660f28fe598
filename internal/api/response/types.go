package response

import (
	"time"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/services/auth"
)

// User represents a user in API responses. The credential never appears here.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Username:     s.Username,
		SessionToken: s.Token,
	}
}

// Destination represents a catalog entry in API responses
type Destination struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

// DestinationFromModel converts a model.Destination
func DestinationFromModel(d model.Destination) Destination {
	return Destination{
		Code:     string(d.Code),
		Name:     d.Name,
		URL:      d.Path,
		Category: string(d.Category),
	}
}

// WantList is the response for want-to-go list reads
type WantList struct {
	Items []Destination `json:"items"`
}

// WantListFromModel converts a mapped list of destinations
func WantListFromModel(items []model.Destination) WantList {
	out := WantList{Items: make([]Destination, 0, len(items))}
	for _, d := range items {
		out.Items = append(out.Items, DestinationFromModel(d))
	}
	return out
}
