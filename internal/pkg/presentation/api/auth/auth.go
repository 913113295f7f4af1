package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type accessContextKey struct{ name string }

var accessCtxKey = &accessContextKey{"access"}

var tracer = otel.Tracer("pdu-alert-mgmt/authz")

const RoleObserver = "observer"

// Access is what the policy grants a caller: an identity, a role and the
// sites the caller may see. Observers are read-only; every other role may
// mutate alerts, maintenance and thresholds.
type Access struct {
	Name  string
	Role  string
	Sites []string
}

func (a Access) CanMutate() bool {
	return a.Role != "" && a.Role != RoleObserver
}

// NewAuthenticator evaluates the rego policy for every request and stores
// the granted access in the request context.
func NewAuthenticator(ctx context.Context, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, err
	}

	query, err := rego.New(
		rego.Query("x = data.pdumonitor.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token":  token[7:],
				"method": r.Method,
				"path":   r.URL.Path,
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// If authz fails we will get back a single bool. Check for that first.
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type from authz policy engine")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			access := Access{}

			if name, ok := result["name"].(string); ok {
				access.Name = name
			}
			if role, ok := result["role"].(string); ok {
				access.Role = strings.ToLower(role)
			}
			if anySites, ok := result["sites"].([]any); ok {
				for _, s := range anySites {
					if site, ok := s.(string); ok {
						access.Sites = append(access.Sites, site)
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(WithAccess(r.Context(), access)))
		})
	}, nil
}

func WithAccess(ctx context.Context, access Access) context.Context {
	return context.WithValue(ctx, accessCtxKey, access)
}

func GetAccessFromContext(ctx context.Context) Access {
	if access, ok := ctx.Value(accessCtxKey).(Access); ok {
		return access
	}
	return Access{}
}

// GetAllowedSitesFromContext returns the caller's site scope. An empty
// list means no site restriction: assigned sites are a default filter,
// not a hard access boundary.
func GetAllowedSitesFromContext(ctx context.Context) []string {
	return GetAccessFromContext(ctx).Sites
}
