package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 25
	MaxPerPage     = 200
)

type PageParams struct {
	Page    int
	PerPage int
}

func (p PageParams) Offset() int { return (p.Page - 1) * p.PerPage }

// ParsePagination membaca ?page= & ?per_page= (alias limit) dengan batas aman.
func ParsePagination(c *fiber.Ctx) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	perRaw := strings.TrimSpace(c.Query("per_page"))
	if perRaw == "" {
		perRaw = strings.TrimSpace(c.Query("limit"))
	}
	per := atoiDefault(perRaw, DefaultPerPage)
	if per < 1 {
		per = DefaultPerPage
	}
	if per > MaxPerPage {
		per = MaxPerPage
	}
	return PageParams{Page: page, PerPage: per}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
