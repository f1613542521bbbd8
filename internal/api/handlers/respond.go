package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/storage"
)

func respondError(c *gin.Context, status int, detail any) {
	c.JSON(status, gin.H{"error": detail})
}

func serverError(c *gin.Context, err error) {
	log.Printf("database operation failed: %v", err)
	respondError(c, http.StatusInternalServerError, "Internal Server Error")
}

// handleStorageError maps storage failures to their HTTP shape: missing row
// to 404 with the entity-specific message, uniqueness violation to 409 with
// the constraint detail, anything else to 500 with the detail withheld.
func handleStorageError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	var conflict *storage.ConflictError
	if errors.As(err, &conflict) {
		respondError(c, http.StatusConflict, conflict.Detail)
		return
	}
	serverError(c, err)
}

// pagination reads the path-embedded page size and 1-indexed page number.
// List routes share the :id segment with the get-by-id routes, so the page
// size arrives under that param name.
func pagination(c *gin.Context) (pageSize, pageNum int, ok bool) {
	pageSize, err := strconv.Atoi(c.Param("id"))
	if err != nil || pageSize <= 0 {
		respondError(c, http.StatusBadRequest, "Page size must be a positive integer")
		return 0, 0, false
	}
	pageNum, err = strconv.Atoi(c.Param("page_num"))
	if err != nil || pageNum <= 0 {
		respondError(c, http.StatusBadRequest, "Page number must be a positive integer")
		return 0, 0, false
	}
	return pageSize, pageNum, true
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
