package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rttm-inventory-service/internal/domain/models"
)

// parseUintParam reads a path parameter as an unsigned integer
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// parseUintQuery reads an optional query parameter as an unsigned integer
func parseUintQuery(ctx *gin.Context, name string) uint {
	v, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// bindPagination reads page and page_size query parameters with defaults
func bindPagination(ctx *gin.Context) models.PaginationQuery {
	q := models.PaginationQuery{}
	if v, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(ctx.DefaultQuery("page_size", "10")); err == nil {
		q.PageSize = v
	}
	q.Normalize()
	return q
}

// pagedData wraps list responses with pagination metadata
func pagedData(items interface{}, total int64, q models.PaginationQuery) gin.H {
	return gin.H{
		"items":     items,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	}
}
