package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/auth"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type EmployeeStore interface {
	Create(employee *models.Employee) error
	GetByID(id string) (*models.Employee, error)
	List(pageSize, pageNum int) ([]models.Employee, error)
	Save(employee *models.Employee) error
	Delete(employee *models.Employee) error
	ExistsByEmailOrUsername(email, username string) (bool, error)
}

type EmployeeHandler struct {
	store EmployeeStore
}

func NewEmployeeHandler(store EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

// Register creates a new employee. Public route: this is how the first
// account gets in.
func (h *EmployeeHandler) Register(c *gin.Context) {
	var req validation.EmployeeRegister
	if !validation.Bind(c, &req) {
		return
	}

	taken, err := h.store.ExistsByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		serverError(c, err)
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "username or email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		serverError(c, err)
		return
	}

	employee := &models.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Email:       req.Email,
		Password:    hash,
		HomeAddress: req.HomeAddress,
		Role:        models.EmployeeRole(req.Role),
	}
	if req.MiddleName != nil {
		employee.MiddleName = *req.MiddleName
	}
	if req.IsAdmin != nil {
		employee.IsAdmin = *req.IsAdmin
	}

	if err := h.store.Create(employee); err != nil {
		handleStorageError(c, err, "User does not exist")
		return
	}

	c.JSON(http.StatusCreated, employeeResponse(employee))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	employees, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(employees) == 0 {
		respondError(c, http.StatusNotFound, "No employee found")
		return
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employeeResponse(&employees[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "User does not exist")
		return
	}
	c.JSON(http.StatusOK, employeeResponse(employee))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req validation.EmployeeUpdate
	if !validation.Bind(c, &req) {
		return
	}

	employee, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "User does not exist")
		return
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		employee.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.HomeAddress != nil {
		employee.HomeAddress = *req.HomeAddress
	}
	if req.Role != nil {
		employee.Role = models.EmployeeRole(*req.Role)
	}
	if req.IsAdmin != nil {
		employee.IsAdmin = *req.IsAdmin
	}

	if err := h.store.Save(employee); err != nil {
		handleStorageError(c, err, "User does not exist")
		return
	}
	c.JSON(http.StatusOK, employeeResponse(employee))
}

// Delete removes an employee; their sessions cascade with the row, so any
// outstanding cookie stops resolving.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employee, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "User does not exist")
		return
	}
	if err := h.store.Delete(employee); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
