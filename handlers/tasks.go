package handlers

import (
	"errors"

	"github.com/biosecret/todoapp-api/middleware"
	"github.com/biosecret/todoapp-api/models"
	"github.com/biosecret/todoapp-api/store"
	"github.com/biosecret/todoapp-api/utils"
	"github.com/gofiber/fiber/v2"
)

// HandleAllTasks lấy tất cả task của người gọi, mới nhất trước
func (h *Handler) HandleAllTasks(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	tasks, err := h.Tasks.ListByUser(c.Context(), identity.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(tasks)
}

// HandleCreateTask tạo mới một task cho người gọi. Các field user, email,
// created do server gán, giá trị client gửi lên bị bỏ qua
func (h *Handler) HandleCreateTask(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	input := new(TaskInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if errs := input.Validate(false); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	id, err := utils.GenerateRandomID()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to generate ID"})
	}

	task := &models.Task{
		ID:     id,
		UserID: identity.ID,
		Email:  identity.Email,
		Title:  *input.Title,
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := h.Tasks.Create(c.Context(), task); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(task)
}

// HandleGetOneTask lấy một task theo ID, chỉ trong phạm vi của người gọi
func (h *Handler) HandleGetOneTask(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	task, err := h.Tasks.Get(c.Context(), c.Params("id"), identity.ID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "task not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(task)
}

// HandleUpdateTask cập nhật toàn bộ task (PUT). Field tùy chọn không gửi lên
// được đưa về giá trị mặc định (description rỗng, completed false)
func (h *Handler) HandleUpdateTask(c *fiber.Ctx) error {
	return h.updateTask(c, false)
}

// HandlePatchTask cập nhật một phần task (PATCH), chỉ các field được gửi lên
func (h *Handler) HandlePatchTask(c *fiber.Ctx) error {
	return h.updateTask(c, true)
}

func (h *Handler) updateTask(c *fiber.Ctx, partial bool) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	input := new(TaskInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if errs := input.Validate(partial); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	// Task của người khác và task không tồn tại đều trả về 404
	task, err := h.Tasks.Get(c.Context(), c.Params("id"), identity.ID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "task not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if partial {
		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Completed != nil {
			task.Completed = *input.Completed
		}
	} else {
		task.Title = *input.Title
		task.Description = ""
		task.Completed = false
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Completed != nil {
			task.Completed = *input.Completed
		}
	}

	if err := h.Tasks.Update(c.Context(), task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(task)
}

// HandleDeleteTask xóa một task của người gọi
func (h *Handler) HandleDeleteTask(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "missing identity"})
	}

	if err := h.Tasks.Delete(c.Context(), c.Params("id"), identity.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(204)
}
