// Package server expose le pipeline QA en HTTP via gin.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Answerer : ce dont le serveur a besoin du pipeline.
type Answerer interface {
	Answer(ctx context.Context, video, question string) (string, error)
}

type qaRequest struct {
	Video    string `json:"video"`
	Question string `json:"question"`
}

type qaResponse struct {
	Answer string `json:"answer"`
}

// NewRouter construit le routeur gin avec CORS, logging et les routes QA.
func NewRouter(a Answerer, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORS(allowedOrigins))
	router.Use(RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "youtubeqa",
			"time":    time.Now(),
		})
	})

	router.POST("/qa", handleQA(a))

	return router
}

func handleQA(a Answerer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req qaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "cuerpo de la petición inválido"})
			return
		}

		req.Video = strings.TrimSpace(req.Video)
		req.Question = strings.TrimSpace(req.Question)
		if req.Video == "" || req.Question == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "los campos video y question son obligatorios"})
			return
		}

		answer, err := a.Answer(c.Request.Context(), req.Video, req.Question)
		if err != nil {
			log.Error().Err(err).Str("video", req.Video).Msg("qa pipeline failed")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, qaResponse{Answer: answer})
	}
}
