package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradejournal/charts"
	"github.com/rustyeddy/tradejournal/internal/id"
	"github.com/rustyeddy/tradejournal/internal/logger"
	"github.com/rustyeddy/tradejournal/internal/session"
	"github.com/rustyeddy/tradejournal/journal"
)

const (
	CookieName = "tj_session"
	sessionKey = "session_id"
)

var errTradeNotFound = errors.New("trade not found")

// Router serves the demo journal of the caller's session.
type Router struct {
	store *session.Store
}

func NewRouter(store *session.Store) *Router {
	return &Router{store: store}
}

// Register mounts the API and chart page on g.
func (r *Router) Register(g gin.IRouter) {
	g.GET("/charts", r.sessionCookie, r.handleChartsPage)

	api := g.Group("/api", r.sessionCookie)
	api.GET("/trades", r.handleListTrades)
	api.POST("/trades", r.handleAddTrade)
	api.GET("/trades/:id", r.handleGetTrade)
	api.DELETE("/trades/:id", r.handleDeleteTrade)
	api.GET("/summary", r.handleSummary)
	api.GET("/charts", r.handleChartSeries)
	api.GET("/export.csv", r.handleExportCSV)
	api.GET("/export.org", r.handleExportOrg)
}

// sessionCookie resolves the tj_session cookie to a live session, or
// starts a fresh demo session and sets the cookie.
func (r *Router) sessionCookie(c *gin.Context) {
	sid, err := c.Cookie(CookieName)
	if err != nil || !id.Valid(sid) || !r.store.Has(sid) {
		sid = r.newSession(c)
	}
	c.Set(sessionKey, sid)
	c.Next()
}

func (r *Router) newSession(c *gin.Context) string {
	sid := r.store.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, sid, 0, "/", "", false, true)
	logger.Debug(c.Request.Context(), "session created", "session", sid)
	return sid
}

// withEngine runs fn on the session engine. A session evicted between
// the middleware and the handler is replaced once.
func (r *Router) withEngine(c *gin.Context, fn func(*journal.Engine) error) error {
	sid := c.GetString(sessionKey)
	err := r.store.With(sid, fn)
	if errors.Is(err, session.ErrNotFound) {
		sid = r.newSession(c)
		c.Set(sessionKey, sid)
		err = r.store.With(sid, fn)
	}
	return err
}

// writeError maps journal errors onto status codes.
func writeError(c *gin.Context, err error) {
	var ve *journal.ValidationError
	var ce *journal.CapacityError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
	case errors.As(err, &ce):
		status = http.StatusConflict
	case errors.Is(err, errTradeNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func tradeID(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade id"})
		return 0, false
	}
	return n, true
}

type tradeList struct {
	Trades    []journal.TradeRecord `json:"trades"`
	Limit     int                   `json:"limit"`
	Remaining int                   `json:"remaining"`
}

func (r *Router) handleListTrades(c *gin.Context) {
	var out tradeList
	err := r.withEngine(c, func(e *journal.Engine) error {
		out = tradeList{Trades: e.Trades(), Limit: e.Limit(), Remaining: e.Remaining()}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (r *Router) handleGetTrade(c *gin.Context) {
	n, ok := tradeID(c)
	if !ok {
		return
	}
	var rec journal.TradeRecord
	err := r.withEngine(c, func(e *journal.Engine) error {
		var found bool
		if rec, found = e.Trade(n); !found {
			return errTradeNotFound
		}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (r *Router) handleAddTrade(c *gin.Context) {
	var in journal.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var rec journal.TradeRecord
	err := r.withEngine(c, func(e *journal.Engine) error {
		var err error
		rec, err = e.AddTrade(in)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info(c.Request.Context(), "trade added", "id", rec.ID, "symbol", rec.Symbol, "pnl", rec.PnL)
	c.JSON(http.StatusCreated, rec)
}

// handleDeleteTrade is idempotent: an unknown id still answers 204.
func (r *Router) handleDeleteTrade(c *gin.Context) {
	n, ok := tradeID(c)
	if !ok {
		return
	}
	err := r.withEngine(c, func(e *journal.Engine) error {
		e.DeleteTrade(n)
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) handleSummary(c *gin.Context) {
	var s journal.Summary
	err := r.withEngine(c, func(e *journal.Engine) error {
		s = e.ComputeSummary()
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (r *Router) handleChartSeries(c *gin.Context) {
	var cs journal.ChartSeries
	err := r.withEngine(c, func(e *journal.Engine) error {
		cs = e.ComputeChartSeries()
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (r *Router) handleChartsPage(c *gin.Context) {
	var cs journal.ChartSeries
	err := r.withEngine(c, func(e *journal.Engine) error {
		cs = e.ComputeChartSeries()
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, cs); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (r *Router) handleExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	err := r.withEngine(c, func(e *journal.Engine) error {
		sink, err := journal.NewCSVWriter(&buf)
		if err != nil {
			return err
		}
		return journal.Export(sink, e.Trades())
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="trades.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (r *Router) handleExportOrg(c *gin.Context) {
	var out string
	err := r.withEngine(c, func(e *journal.Engine) error {
		head, err := journal.FormatSummaryOrg("", e.ComputeSummary(), e.ComputeChartSeries())
		if err != nil {
			return err
		}
		out = head + "\n" + journal.FormatTradesOrg(e.Trades())
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="trades.org"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out))
}
