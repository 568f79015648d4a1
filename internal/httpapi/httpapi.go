// Package httpapi exposes the document engine over HTTP, adapted from
// cmd/serve.go's gin-gonic/gin route-registration idiom: a fresh
// docsplice.Document per request body rather than a long-lived store,
// since each request is exactly one synchronous apply/locate against the
// Markdown text it carries.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdsplice/mdsplice/internal/docsplice"
	"github.com/mdsplice/mdsplice/internal/locator"
	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
	"github.com/mdsplice/mdsplice/internal/transaction"
	"github.com/mdsplice/mdsplice/internal/txnid"
)

// NewRouter builds the gin engine for the automation surface. log is used
// for request-scoped error reporting; pass nil to use slog.Default().
func NewRouter(log *slog.Logger) *gin.Engine {
	if log == nil {
		log = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.GET("/healthz", handleHealthz)
	v1 := router.Group("/v1/documents")
	v1.POST("/apply", handleApply(log))
	v1.POST("/locate", handleLocate)

	return router
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}

func handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// applyRequest is the body of POST /v1/documents/apply.
type applyRequest struct {
	Markdown   string                  `json:"markdown"`
	Operations []transaction.Operation `json:"operations"`
}

type applyResponse struct {
	Markdown           string `json:"markdown"`
	FrontmatterMutated bool   `json:"frontmatter_mutated"`
	Ambiguous          bool   `json:"ambiguous"`
	TxnID              string `json:"txn_id"`
}

func handleApply(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, spliceerr.Wrap(spliceerr.OperationParse, err))
			return
		}

		doc, err := docsplice.Parse(req.Markdown)
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		ambiguous, err := doc.Apply(req.Operations)
		if err != nil {
			writeError(c, http.StatusUnprocessableEntity, err)
			return
		}

		rendered, err := doc.Render()
		if err != nil {
			writeError(c, http.StatusInternalServerError, err)
			return
		}

		id := txnid.New()
		frontmatterMutated := touchesFrontmatter(req.Operations)
		log.Info("apply", "txn_id", id, "ambiguous", ambiguous, "ops", len(req.Operations))

		c.JSON(http.StatusOK, applyResponse{
			Markdown:           rendered,
			FrontmatterMutated: frontmatterMutated,
			Ambiguous:          ambiguous,
			TxnID:              id,
		})
	}
}

// locateRequest is the body of POST /v1/documents/locate.
type locateRequest struct {
	Markdown string                   `json:"markdown"`
	Selector *transaction.SelectorDTO `json:"selector"`
}

type locateResponse struct {
	Found      bool   `json:"found"`
	Text       string `json:"text,omitempty"`
	IsListItem bool   `json:"is_list_item,omitempty"`
	Ambiguous  bool   `json:"ambiguous,omitempty"`
}

func handleLocate(c *gin.Context) {
	var req locateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, spliceerr.Wrap(spliceerr.OperationParse, err))
		return
	}

	doc, err := docsplice.Parse(req.Markdown)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	found, ambiguous, err := doc.Locate(req.Selector)
	if err != nil {
		if spliceerr.Of(err, spliceerr.NodeNotFound) {
			c.JSON(http.StatusOK, locateResponse{Found: false})
			return
		}
		writeError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, locateResponse{
		Found:      true,
		Text:       foundText(doc, found),
		IsListItem: found.IsListItem,
		Ambiguous:  ambiguous,
	})
}

func foundText(doc *docsplice.Document, found locator.FoundNode) string {
	b := doc.Blocks[found.BlockIndex]
	if !found.IsListItem {
		return locator.BlockText(b)
	}
	if list, ok := b.(*mdast.List); ok && found.ItemIndex >= 0 && found.ItemIndex < len(list.Items) {
		return locator.ListItemText(list.Items[found.ItemIndex])
	}
	return locator.BlockText(b)
}

func touchesFrontmatter(ops []transaction.Operation) bool {
	for _, op := range ops {
		switch op.Op {
		case transaction.SetFrontmatter, transaction.DeleteFrontmatter, transaction.ReplaceFrontmatter:
			return true
		}
	}
	return false
}

func writeError(c *gin.Context, status int, err error) {
	kind := "Unknown"
	payload := ""
	if se, ok := err.(*spliceerr.Error); ok {
		kind = se.Kind.String()
		payload = se.Payload
	} else if k, ok := spliceerr.KindOf(err); ok {
		kind = k.String()
	}
	c.JSON(status, gin.H{
		"error":   err.Error(),
		"kind":    kind,
		"payload": payload,
	})
}
