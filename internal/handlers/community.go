package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	"github.com/helaluddin100/greenbuild/internal/models"
	"github.com/helaluddin100/greenbuild/internal/util"
)

type CommunityHandler struct {
	DB *gorm.DB
}

func (h *CommunityHandler) ListPosts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.Model(&models.Post{}).Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var posts []models.Post
	if err := h.DB.Order("id DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return pagedJSON(c, posts, page, limit, total)
}

func (h *CommunityHandler) GetPost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var post models.Post
	if err := h.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var comments []models.Comment
	if err := h.DB.Where("post_id = ?", id).Order("id ASC").Find(&comments).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusOK, echo.Map{
		"post":     post,
		"comments": comments,
	})
}

func (h *CommunityHandler) CreatePost(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Title == "" || req.Body == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "title and body are required")
	}

	post := models.Post{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
	}
	if err := h.DB.Create(&post).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusCreated, post)
}

func (h *CommunityHandler) DeletePost(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var post models.Post
	if err := h.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.UserID != userID && authmw.Role(c) != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "not your post")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CommunityHandler) CreateComment(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Body == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "body is required")
	}

	var post models.Post
	if err := h.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := models.Comment{
		PostID: uint(postID),
		UserID: userID,
		Body:   req.Body,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return dataJSON(c, http.StatusCreated, comment)
}
