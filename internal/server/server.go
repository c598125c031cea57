// Package server exposes the polarity classifiers over HTTP.
package server

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsawler/polarity"
)

// DefaultClassifier is used when a request names none.
const DefaultClassifier = polarity.NaiveBayes

// ClassifyRequest is the body of POST /api/polarity/classify.
type ClassifyRequest struct {
	Text       string `json:"text" binding:"required"`
	Classifier string `json:"classifier"`
}

// ClassifyResponse is returned for a classified text.
type ClassifyResponse struct {
	Classifier string  `json:"classifier"`
	Polarity   int     `json:"polarity"`
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Positive   int     `json:"positiveWords"`
	Negative   int     `json:"negativeWords"`
	Neutral    int     `json:"neutralWords"`
}

// Server routes requests to a fixed set of classifiers. The classifiers are
// shared read-only snapshots, so handlers may run concurrently.
type Server struct {
	classifiers map[polarity.Kind]polarity.Classifier
	log         *slog.Logger
}

// New creates a server for the given classifiers.
func New(classifiers []polarity.Classifier, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		classifiers: make(map[polarity.Kind]polarity.Classifier, len(classifiers)),
		log:         log,
	}
	for _, c := range classifiers {
		s.classifiers[c.Kind()] = c
	}
	return s
}

// SetupRouter registers the routes on a new engine.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/polarity")
	{
		api.GET("/classifiers", s.listClassifiers)
		api.POST("/classify", s.classify)
	}

	return r
}

func (s *Server) listClassifiers(c *gin.Context) {
	var names []string
	for _, kind := range polarity.Kinds() {
		if _, ok := s.classifiers[kind]; ok {
			names = append(names, kind.String())
		}
	}
	c.JSON(http.StatusOK, gin.H{"classifiers": names})
}

func (s *Server) classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := DefaultClassifier
	if req.Classifier != "" {
		k, err := polarity.ParseKind(req.Classifier)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		kind = k
	}

	clf, ok := s.classifiers[kind]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classifier not available: " + kind.String()})
		return
	}

	op := clf.Classify(req.Text)
	s.log.Debug("classified",
		slog.String("classifier", kind.String()),
		slog.String("label", op.Polarity.String()),
		slog.Float64("score", op.Score))

	c.JSON(http.StatusOK, ClassifyResponse{
		Classifier: kind.String(),
		Polarity:   int(op.Polarity),
		Label:      op.Polarity.String(),
		Score:      finite(op.Score),
		Positive:   op.Positive,
		Negative:   op.Negative,
		Neutral:    op.Neutral,
	})
}

// finite maps NaN and infinities, which JSON cannot carry, to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
