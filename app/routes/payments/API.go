package payments

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

type RecordPaymentRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	Amount    *float64 `json:"amount"`
}

func ListPayments(billing *services.Billing) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := store.TransactionFilters{
			GroupID:   c.Query("group_id"),
			StudentID: c.Query("student_id"),
		}
		if v := c.Query("from"); v != "" {
			from, err := time.Parse(models.DateLayout, v)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Invalid from date, expected YYYY-MM-DD"})
			}
			filters.From = from
		}
		if v := c.Query("to"); v != "" {
			to, err := time.Parse(models.DateLayout, v)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Invalid to date, expected YYYY-MM-DD"})
			}
			// the to filter is exclusive, shift to include the named day
			filters.To = to.AddDate(0, 0, 1)
		}
		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				return c.Status(400).JSON(fiber.Map{"error": "Invalid limit"})
			}
			filters.Limit = limit
		}

		transactions, err := billing.List(filters)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if transactions == nil {
			transactions = []*models.Transaction{}
		}
		return c.JSON(transactions)
	}
}

// RecordPayment appends a manual ledger entry, billed at the group
// session price unless an explicit amount is given.
func RecordPayment(billing *services.Billing) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RecordPaymentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		txn, err := billing.RecordPayment(req.StudentID, req.Amount)
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.Status(201).JSON(txn)
	}
}

// Summary reduces the ledger over a trailing day, week or month window.
func Summary(billing *services.Billing) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := models.SummaryPeriod(c.Query("period", string(models.PeriodDay)))
		summary, err := billing.Summarize(period, c.Query("group_id"))
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		return c.JSON(summary)
	}
}
