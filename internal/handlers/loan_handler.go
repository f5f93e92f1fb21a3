package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Rishab260/loan-app-poc/internal/broadcast"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SubmissionService interface {
	Submit(ctx context.Context, user *models.User, fields map[string]string) (string, error)
}

type SnapshotReader interface {
	Get(ctx context.Context, id string) (*models.LoanSnapshot, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (broadcast.Subscription, error)
}

type LoanHandler struct {
	Service   SubmissionService
	Snapshots SnapshotReader
	Broadcast Subscriber
}

func NewLoanHandler(s SubmissionService, snapshots SnapshotReader, b Subscriber) *LoanHandler {
	return &LoanHandler{Service: s, Snapshots: snapshots, Broadcast: b}
}

// POST /submit
func (h *LoanHandler) Submit(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.Service.Submit(c.Request.Context(), CurrentUser(c), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// GET /loans/:id
func (h *LoanHandler) GetLoan(c *gin.Context) {
	snap, err := h.Snapshots.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// GET /events/:id
//
// Streams decision events for one submission as server-sent events until
// the client disconnects. Events published before the subscription was
// registered are not replayed.
func (h *LoanHandler) Events(c *gin.Context) {
	topic := models.BroadcastTopic(c.Param("id"))

	sub, err := h.Broadcast.Subscribe(c.Request.Context(), topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-sub.Messages():
			if !ok {
				return false
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	logrus.Debugf("event stream for %s closed", c.Param("id"))
}

func bindFields(c *gin.Context) (map[string]string, error) {
	fields := map[string]string{}

	if c.ContentType() == gin.MIMEJSON {
		if err := c.ShouldBindJSON(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}
