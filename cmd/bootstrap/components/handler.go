package components

import (
	"rugboost-api/internal/handler"
	"rugboost-api/internal/handler/api"
	"rugboost-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewContactHandler,
		api.NewRegistrationHandler,
		api.NewInspectionHandler,
		api.NewPhotoHandler,
		api.NewSocialHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Contact      *api.ContactHandler
	Registration *api.RegistrationHandler
	Inspection   *api.InspectionHandler
	Photo        *api.PhotoHandler
	Social       *api.SocialHandler
	Profile      *api.ProfileHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Contact:      p.Contact,
		Registration: p.Registration,
		Inspection:   p.Inspection,
		Photo:        p.Photo,
		Social:       p.Social,
		Profile:      p.Profile,
	}
}
