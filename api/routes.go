package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// NewAPI builds the versioned API surface on the given mux. Split out of
// Serve so tests can mount the same routes without a listener.
func (r *Rest) NewAPI(mux *http.ServeMux) huma.API {
	humaAPI := humago.New(mux, huma.DefaultConfig("finance-tracker", "1.0.0"))

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	budget.NewGetBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewSetBudgetsHandler(r.Operator).Register(humaAPI)
	budget.NewGetUsageHandler(r.Service.Budget).Register(humaAPI)

	category.NewListCategoriesHandler(r.Service.Budget).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewRenameCategoryHandler(r.Operator).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	summary.NewGetSummaryHandler(r.Service.Summary).Register(humaAPI)
	summary.NewGetInsightsHandler(r.Service.Summary).Register(humaAPI)

	return humaAPI
}

// withRequestContext attaches the active user id (from the identity header)
// and a fresh LogData to every request, and flushes one log entry when the
// request finishes.
func (r *Rest) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		if userID := req.Header.Get(identity.HeaderName); userID != "" {
			ctx = identity.WithUserID(ctx, userID)
		}

		logData := logging.NewLogData(r.Logger)
		logData.AddData("path", req.URL.Path)
		logData.AddData("method", req.Method)
		ctx = logging.WithLogData(ctx, logData)

		endTimer := logData.AddTiming("duration")
		next.ServeHTTP(w, req.WithContext(ctx))
		endTimer()

		logData.Log().Info("HttpServer.Request.Complete")
	})
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	r.NewAPI(mux)

	// Status stays outside the request-context wrapper; LoggingWrapper
	// already gives it a LogData and probes carry no identity header.
	root := http.NewServeMux()
	statusHandler := status.NewHandler()
	root.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	root.Handle("/", r.withRequestContext(mux))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           root,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
