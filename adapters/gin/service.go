package apigin

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/gin/handlers"
	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
	memorylimiter "github.com/socialmotion/backend/ratelimit/memory"
)

// Service wraps the core service with HTTP mounting.
type Service struct {
	svc core.Provider
	rl  ginutil.RateLimiter
	hub handlers.Hub
}

func NewService(svc core.Provider) *Service {
	return &Service{svc: svc}
}

func (s *Service) WithRateLimiter(rl ginutil.RateLimiter) *Service { s.rl = rl; return s }

// WithHub sets the websocket hub serving admin notification sessions.
func (s *Service) WithHub(hub handlers.Hub) *Service { s.hub = hub; return s }

// RegisterAPI mounts the JSON API endpoints under the given router/group.
func (s *Service) RegisterAPI(api gin.IRouter) *Service {
	rl := s.ensureLimiter()
	auth := AuthRequired(s.svc)

	api.GET("/health", handlers.HandleHealthGET())

	api.POST("/contact", handlers.HandleContactPOST(s.svc, rl))
	api.GET("/contacts", auth, handlers.HandleContactsGET(s.svc))
	api.DELETE("/contacts/:id", auth, handlers.HandleContactDELETE(s.svc))

	api.POST("/admin/login", handlers.HandleAdminLoginPOST(s.svc, rl))
	api.GET("/admin/users", auth, handlers.HandleAdminUsersGET(s.svc))
	api.POST("/admin/users", auth, handlers.HandleAdminUsersPOST(s.svc))
	api.DELETE("/admin/users/:id", auth, handlers.HandleAdminUserDELETE(s.svc))

	api.POST("/otp/send", handlers.HandleOTPSendPOST(s.svc, rl))
	api.POST("/otp/verify", handlers.HandleOTPVerifyPOST(s.svc, rl))

	api.POST("/price-request", handlers.HandlePriceRequestPOST(s.svc, rl))
	api.GET("/price-offer/:token", handlers.HandlePriceOfferGET(s.svc, rl))

	return s
}

// RegisterWS mounts the websocket endpoint at the absolute root path.
func (s *Service) RegisterWS(root gin.IRouter) *Service {
	if s.hub != nil {
		root.GET("/ws", handlers.HandleWSGET(s.hub))
	}
	return s
}

func (s *Service) ensureLimiter() ginutil.RateLimiter {
	if s.rl != nil {
		return s.rl
	}
	return memorylimiter.New(defaultMemoryLimits())
}

// defaultMemoryLimits provides sensible default rate limits for the API.
func defaultMemoryLimits() map[string]memorylimiter.Limit {
	return map[string]memorylimiter.Limit{
		"default":               {Limit: 120, Window: time.Minute},
		ginutil.RLOTPSend:       {Limit: 5, Window: 10 * time.Minute}, // SMS is costly
		ginutil.RLOTPVerify:     {Limit: 15, Window: 10 * time.Minute},
		ginutil.RLPriceRequest:  {Limit: 20, Window: time.Hour},
		ginutil.RLPriceOffer:    {Limit: 60, Window: 10 * time.Minute},
		ginutil.RLContactSubmit: {Limit: 10, Window: 10 * time.Minute},
		ginutil.RLAdminLogin:    {Limit: 10, Window: 10 * time.Minute},
	}
}
