package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shareit/infras/otel"
	"shareit/permissions"
	"shareit/shared"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"
)

// Identity resolves the acting user from the X-Sharer-User-Id header.
type Identity interface {
	RequireSharer(next http.Handler) http.Handler
}

type identityImpl struct {
	otel       otel.Otel
	exemptions *permissions.ExemptionData
}

func NewIdentityMiddleware(otel otel.Otel, exemptions *permissions.ExemptionData) Identity {
	return &identityImpl{
		otel:       otel,
		exemptions: exemptions,
	}
}

// RequireSharer places the sharer user id into the request context. Endpoints
// listed in the embedded exemptions are let through without the header.
func (m *identityImpl) RequireSharer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "identity.middleware")

		if m.exemptions != nil {
			rctx := chi.RouteContext(ctx)
			path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

			if m.exemptions.Skip || m.exemptions.FindExemption(path, request.Method).Skip {
				scope.End()
				next.ServeHTTP(writer, request)

				return
			}
		}

		header := request.Header.Get(constant.RequestHeaderSharerUserID)
		if header == "" {
			err := failure.BadRequestFromString("missing X-Sharer-User-Id header")

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		userID, err := shared.ParseID(header)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
