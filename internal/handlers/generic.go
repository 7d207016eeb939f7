package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/store"
)

// GenericHandler is the fallback CRUD layer: any request no custom route
// claimed lands here and is served collection-level, addressed by internal id
// rather than a public key. Registered as the router's NoRoute handler, so
// the full middleware chain (including the employments bearer gate) has
// already run.
type GenericHandler struct {
	Store *store.Store
}

func NewGenericHandler(s *store.Store) *GenericHandler {
	return &GenericHandler{Store: s}
}

func (h *GenericHandler) Handle(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")

	var collection, id string
	switch len(parts) {
	case 1:
		collection = parts[0]
	case 2:
		collection, id = parts[0], parts[1]
	default:
		h.notFound(c, "no such route")
		return
	}
	if collection == "" {
		h.notFound(c, "no such route")
		return
	}

	records, err := h.Store.Read(collection)
	if errors.Is(err, store.ErrUnknownCollection) {
		h.notFound(c, fmt.Sprintf("unknown collection '%s'", collection))
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	if id == "" {
		h.handleCollection(c, collection, records)
		return
	}
	h.handleRecord(c, collection, id)
}

func (h *GenericHandler) handleCollection(c *gin.Context, collection string, records []models.Record) {
	switch c.Request.Method {
	case http.MethodGet:
		c.JSON(http.StatusOK, records)
	case http.MethodPost:
		var body models.Record
		if err := c.ShouldBindJSON(&body); err != nil || body == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "request body must be a JSON object"})
			return
		}
		var created models.Record
		err := h.Store.Update(collection, func(records []models.Record) ([]models.Record, error) {
			body["id"] = store.NextID(records)
			created = body
			return append(records, body), nil
		})
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	default:
		h.notFound(c, "no such route")
	}
}

func (h *GenericHandler) handleRecord(c *gin.Context, collection, id string) {
	switch c.Request.Method {
	case http.MethodGet:
		records, err := h.Store.Read(collection)
		if err != nil {
			internalError(c, err)
			return
		}
		rec, _, ok := store.Find(records, "id", id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		c.JSON(http.StatusOK, rec)

	case http.MethodPut, http.MethodPatch:
		var body models.Record
		if err := c.ShouldBindJSON(&body); err != nil || body == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "request body must be a JSON object"})
			return
		}
		var updated models.Record
		replace := c.Request.Method == http.MethodPut
		err := h.Store.Update(collection, func(records []models.Record) ([]models.Record, error) {
			rec, i, ok := store.Find(records, "id", id)
			if !ok {
				return nil, store.ErrNotFound
			}
			if replace {
				// PUT replaces the record outright; only the id survives.
				body["id"] = rec["id"]
				records[i] = body
			} else {
				merged := make(models.Record, len(rec)+len(body))
				for k, v := range rec {
					merged[k] = v
				}
				for k, v := range body {
					if k == "id" {
						continue
					}
					merged[k] = v
				}
				records[i] = merged
			}
			updated = records[i]
			return records, nil
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)

	case http.MethodDelete:
		err := h.Store.Update(collection, func(records []models.Record) ([]models.Record, error) {
			_, i, ok := store.Find(records, "id", id)
			if !ok {
				return nil, store.ErrNotFound
			}
			return append(records[:i], records[i+1:]...), nil
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{})

	default:
		h.notFound(c, "no such route")
	}
}

func (h *GenericHandler) notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not Found", "message": message})
}
