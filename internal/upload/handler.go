package upload

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	storage *Storage
}

func NewHandler(storage *Storage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Missing file"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	defer src.Close()

	name, err := h.storage.Save(filepath.Ext(fileHeader.Filename), src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"filename": name,
		"url":      "/uploads/" + name,
	})
}
