package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
	"github.com/ahmed1mohammd/Attendee-system/app/utils"
)

// Stats assembles the landing page counters: entity counts, trailing
// 30-day income and the latest ledger entries.
func Stats(st store.Store, billing *services.Billing) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := st.ListStudents(store.StudentFilters{})
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		groups, err := st.ListGroups()
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		exams, err := st.ListExams("")
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		monthly, err := billing.Summarize(models.PeriodMonth, "")
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		recent, err := billing.List(store.TransactionFilters{Limit: 5})
		if err != nil {
			return utils.ErrorResponse(c, err)
		}
		if recent == nil {
			recent = []*models.Transaction{}
		}

		return c.JSON(&models.DashboardStats{
			StudentsCount:  len(students),
			GroupsCount:    len(groups),
			ExamsCount:     len(exams),
			MonthlyIncome:  monthly.Total,
			RecentPayments: recent,
		})
	}
}
