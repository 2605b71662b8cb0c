// Package web serves the translation form and a small JSON API over a
// Translator.
package web

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/valpere/gemtran/internal"
	"github.com/valpere/gemtran/internal/config"
	"github.com/valpere/gemtran/internal/languages"
	"github.com/valpere/gemtran/internal/translator"
)

type Server struct {
	cfg    config.ServerConfig
	tr     translator.Translator
	log    *slog.Logger
	engine *gin.Engine
}

func New(cfg config.ServerConfig, tr translator.Translator, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{cfg: cfg, tr: tr, log: log}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/", s.index)
	router.POST("/translate", s.translateForm)
	router.POST("/clear", s.clearForm)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	if mw := corsMiddleware(cfg.AllowedOrigins); mw != nil {
		api.Use(mw)
	}
	api.GET("/languages", s.listLanguages)
	api.POST("/translate", s.translateAPI)

	s.engine = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) index(c *gin.Context) {
	s.render(c, InitialState())
}

func (s *Server) translateForm(c *gin.Context) {
	prev := PageState{
		InputText:      c.PostForm("text"),
		TargetLanguage: c.PostForm("language"),
	}
	s.render(c, Submit(c.Request.Context(), s.tr, prev))
}

func (s *Server) clearForm(c *gin.Context) {
	s.render(c, Clear(PageState{TargetLanguage: c.PostForm("language")}))
}

func (s *Server) render(c *gin.Context, state PageState) {
	var buf bytes.Buffer
	if err := Render(&buf, state); err != nil {
		s.log.Error("failed to render page", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) listLanguages(c *gin.Context) {
	all := languages.All()
	data := make([]gin.H, 0, len(all))
	for _, l := range all {
		data = append(data, gin.H{"name": l.Name, "tag": l.Tag.String()})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *Server) translateAPI(c *gin.Context) {
	// No binding tags: empty fields are reported by the translator as InvalidInput.
	var req internal.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "InvalidRequest",
			"message": "Request body must be JSON: " + err.Error(),
		})
		return
	}

	translated, err := s.tr.Translate(c.Request.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		status, kind := apiErrorStatus(err)
		var terr *internal.Error
		msg := err.Error()
		if errors.As(err, &terr) {
			msg = terr.Message
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   kind,
			"message": msg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": internal.TranslationResult{
			Text:           translated,
			TargetLanguage: req.TargetLanguage,
		},
	})
}

func apiErrorStatus(err error) (int, string) {
	kind := internal.KindOf(err)
	switch kind {
	case internal.KindInvalidInput:
		return http.StatusBadRequest, string(kind)
	case internal.KindUpstream, internal.KindParse:
		return http.StatusBadGateway, string(kind)
	case internal.KindNetwork:
		return http.StatusGatewayTimeout, string(kind)
	default:
		return http.StatusInternalServerError, "InternalError"
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return nil
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
