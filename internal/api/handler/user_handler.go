package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/api/metrics"
	"github.com/vetcare/clinic-api/internal/core/ports"
)

// UserHandler exposes account registration and the owner-scoped user CRUD.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account. Open endpoint; role defaults to "usuario".
//
// @Summary      Register a new user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Registration details"
// @Success      201   {object}  userMessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /usuarios [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, userMessageResponse{
		Message: "user created successfully",
		User:    user,
	})
}

// Get returns an account, visible to its owner or an admin.
//
// @Summary      Get a user by id
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Update mutates an account. Owner or admin; only admins can change roles.
//
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), actor, id, ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userMessageResponse{
		Message: "user updated successfully",
		User:    user,
	})
}

// Delete removes an account. Owner or admin.
//
// @Summary      Delete a user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// UploadImage stores a profile image for the caller's own account.
//
// @Summary      Upload a profile image
// @Tags         usuarios
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int   true  "User id"
// @Param        imagen  formData  file  true  "Image file (max 5 MB)"
// @Success      200     {object}  userMessageResponse
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /usuarios/{id}/imagen [post]
func (h *UserHandler) UploadImage(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no image provided")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image")
	}
	defer file.Close()

	user, err := h.userService.SetProfileImage(c.Request().Context(), actor, id, ports.ImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userMessageResponse{
		Message: "profile image updated successfully",
		User:    user,
	})
}
