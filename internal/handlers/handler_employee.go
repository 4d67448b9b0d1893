package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees, their salary and payouts.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.enrollEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.POST("/:employeeID/deactivate", h.deactivateEmployee)
		employees.GET("/:employeeID/salary", h.getSalary)
		employees.PUT("/:employeeID/salary", h.updateSalary)
		employees.POST("/:employeeID/payments", h.recordPayment)
		employees.GET("/:employeeID/payments", h.listPayments)
	}
}

// enrollEmployee godoc
// @Summary Enroll an employee
// @Description Creates an employee together with their salary in one transaction.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.EnrollEmployeeRequest true "Employee and salary"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Phone number already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) enrollEmployee(c *gin.Context) {
	var req dto.EnrollEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	adminID, ok := principalID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.EnrollEmployee(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, err, "Failed to enroll employee")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee enrolled", slog.Int64("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Lists every employee managed by the logged-in admin, including deactivated ones.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), adminID, employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update; omitted fields are left unchanged.
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), adminID, employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Description Marks the employee unactive. Their records are kept and no further absences are generated.
// @Tags employees
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/deactivate [post]
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), adminID, employeeID); err != nil {
		respondError(c, err, "Failed to deactivate employee")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deactivated successfully"})
}

// getSalary godoc
// @Summary Get an employee's salary
// @Tags employees
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} dto.SalaryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/salary [get]
func (h *employeeHandler) getSalary(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	salary, err := h.employeeService.GetSalary(c.Request.Context(), adminID, employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryResponse(salary))
}

// updateSalary godoc
// @Summary Change an employee's base salary
// @Description Affects attendance recorded from now on. Existing records keep their accrued amount.
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Param salary body dto.UpdateSalaryRequest true "New base salary"
// @Success 200 {object} dto.SalaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/salary [put]
func (h *employeeHandler) updateSalary(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	var req dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	salary, err := h.employeeService.UpdateSalary(c.Request.Context(), adminID, employeeID, req.Salary)
	if err != nil {
		respondError(c, err, "Failed to update salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryResponse(salary))
}

// recordPayment godoc
// @Summary Record a payout
// @Description The latest payout date starts the employee's next accrual window.
// @Tags payments
// @Accept json
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Param payment body dto.RecordPaymentRequest true "Payout"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/payments [post]
func (h *employeeHandler) recordPayment(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	payment, err := h.employeeService.RecordPayment(c.Request.Context(), adminID, employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payouts
// @Tags payments
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/payments [get]
func (h *employeeHandler) listPayments(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeID")
	if !ok {
		return
	}
	payments, err := h.employeeService.ListPayments(c.Request.Context(), adminID, employeeID)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}
