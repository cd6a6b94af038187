package handlers

import (
	"errors"

	"github.com/biosecret/todoapp-api/middleware"
	"github.com/biosecret/todoapp-api/store"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// HandleGetProfile lấy một profile theo ID
func (h *Handler) HandleGetProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
	}

	profile, err := h.Profiles.Get(c.Context(), int64(id))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(profile)
}

// HandleUpdateProfile cập nhật toàn bộ profile (PUT)
func (h *Handler) HandleUpdateProfile(c *fiber.Ctx) error {
	return h.updateProfile(c, false)
}

// HandlePatchProfile cập nhật một phần profile (PATCH)
func (h *Handler) HandlePatchProfile(c *fiber.Ctx) error {
	return h.updateProfile(c, true)
}

// updateProfile: người gọi chỉ được sửa profile của chính mình; sửa profile
// của người khác trả về 404 y như profile không tồn tại
func (h *Handler) updateProfile(c *fiber.Ctx, partial bool) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || int64(id) != identity.ID {
		return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if errs := input.Validate(partial); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	profile, err := h.Profiles.Get(c.Context(), identity.ID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	input.Apply(profile)

	// Nếu payload có password thì hash lại trước khi lưu
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "could not hash password"})
		}
		profile.Password = string(hashedPassword)
	}

	if err := h.Profiles.Update(c.Context(), profile); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.Status(400).JSON(fiber.Map{"errors": fiber.Map{"email": msgDupEmail}})
		}
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(profile)
}

// HandleDeleteProfile xóa profile của chính người gọi cùng toàn bộ task
// thuộc về nó
func (h *Handler) HandleDeleteProfile(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || int64(id) != identity.ID {
		return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
	}

	if err := h.Profiles.Delete(c.Context(), identity.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "profile not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(204)
}
