package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateRequest(ctx context.Context, request entities.VerificationRequest) error {
	row := requestModelFromEntity(request)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidRequestInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetRequest(ctx context.Context, requestID string) (entities.VerificationRequest, error) {
	var row requestModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", strings.TrimSpace(requestID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VerificationRequest{}, domainerrors.ErrRequestNotFound
		}
		return entities.VerificationRequest{}, err
	}
	return row.toEntity(), nil
}

// UpdateRequest applies a guarded whole-row update: rows are matched on id
// and current status, so a transition raced by another writer affects zero
// rows and is reported as an invalid transition.
func (r *Repository) UpdateRequest(ctx context.Context, request entities.VerificationRequest, fromStatuses []entities.RequestStatus) error {
	statuses := make([]string, 0, len(fromStatuses))
	for _, status := range fromStatuses {
		statuses = append(statuses, string(status))
	}

	row := requestModelFromEntity(request)
	result := r.db.WithContext(ctx).
		Model(&requestModel{}).
		Where("request_id = ?", row.RequestID).
		Where("status IN ?", statuses).
		Updates(map[string]any{
			"status":             row.Status,
			"proof_media_kind":   row.ProofMediaKind,
			"proof_reference":    row.ProofReference,
			"proof_submitted_at": row.ProofSubmittedAt,
			"response_decision":  row.ResponseDecision,
			"response_comment":   row.ResponseComment,
			"responded_at":       row.RespondedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&requestModel{}).
			Where("request_id = ?", row.RequestID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrRequestNotFound
		}
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

func (r *Repository) ListRequests(ctx context.Context, filter ports.RequestFilter) ([]entities.VerificationRequest, error) {
	tx := r.db.WithContext(ctx).Model(&requestModel{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ManagerID != "" {
		tx = tx.Where("manager_id = ?", filter.ManagerID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []requestModel
	if err := tx.Order("requested_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.VerificationRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListOverdueRequests(ctx context.Context, now time.Time) ([]entities.VerificationRequest, error) {
	var rows []requestModel
	err := r.db.WithContext(ctx).
		Model(&requestModel{}).
		Where("status IN ?", []string{
			string(entities.RequestStatusPending),
			string(entities.RequestStatusAccepted),
		}).
		Where("deadline IS NOT NULL").
		Where("deadline < ?", now.UTC()).
		Order("requested_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.VerificationRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type requestModel struct {
	RequestID        string     `gorm:"column:request_id;primaryKey"`
	EmployeeID       string     `gorm:"column:employee_id"`
	EmployeeName     string     `gorm:"column:employee_name"`
	EmployeeContact  string     `gorm:"column:employee_contact"`
	ManagerID        string     `gorm:"column:manager_id"`
	ManagerName      string     `gorm:"column:manager_name"`
	Kind             string     `gorm:"column:kind"`
	Title            string     `gorm:"column:title"`
	Description      string     `gorm:"column:description"`
	RequestedAt      time.Time  `gorm:"column:requested_at"`
	Deadline         *time.Time `gorm:"column:deadline"`
	Status           string     `gorm:"column:status"`
	ProofMediaKind   string     `gorm:"column:proof_media_kind"`
	ProofReference   string     `gorm:"column:proof_reference"`
	ProofSubmittedAt *time.Time `gorm:"column:proof_submitted_at"`
	ResponseDecision string     `gorm:"column:response_decision"`
	ResponseComment  string     `gorm:"column:response_comment"`
	RespondedAt      *time.Time `gorm:"column:responded_at"`
}

func (requestModel) TableName() string {
	return "verification_requests"
}

func requestModelFromEntity(item entities.VerificationRequest) requestModel {
	row := requestModel{
		RequestID:       strings.TrimSpace(item.RequestID),
		EmployeeID:      strings.TrimSpace(item.EmployeeID),
		EmployeeName:    strings.TrimSpace(item.EmployeeName),
		EmployeeContact: strings.TrimSpace(item.EmployeeContact),
		ManagerID:       strings.TrimSpace(item.ManagerID),
		ManagerName:     strings.TrimSpace(item.ManagerName),
		Kind:            string(item.Kind),
		Title:           strings.TrimSpace(item.Title),
		Description:     strings.TrimSpace(item.Description),
		RequestedAt:     item.RequestedAt.UTC(),
		Deadline:        normalizeOptionalTime(item.Deadline),
		Status:          string(item.Status),
	}
	if item.Proof != nil {
		submittedAt := item.Proof.SubmittedAt.UTC()
		row.ProofMediaKind = string(item.Proof.MediaKind)
		row.ProofReference = item.Proof.Reference
		row.ProofSubmittedAt = &submittedAt
	}
	if item.Response != nil {
		respondedAt := item.Response.RespondedAt.UTC()
		row.ResponseDecision = string(item.Response.Decision)
		row.ResponseComment = item.Response.Comment
		row.RespondedAt = &respondedAt
	}
	return row
}

func (m requestModel) toEntity() entities.VerificationRequest {
	item := entities.VerificationRequest{
		RequestID:       m.RequestID,
		EmployeeID:      m.EmployeeID,
		EmployeeName:    m.EmployeeName,
		EmployeeContact: m.EmployeeContact,
		ManagerID:       m.ManagerID,
		ManagerName:     m.ManagerName,
		Kind:            entities.RequestKind(m.Kind),
		Title:           m.Title,
		Description:     m.Description,
		RequestedAt:     m.RequestedAt.UTC(),
		Deadline:        normalizeOptionalTime(m.Deadline),
		Status:          entities.RequestStatus(m.Status),
	}
	if m.ProofSubmittedAt != nil {
		item.Proof = &entities.SubmittedProof{
			MediaKind:   entities.MediaKind(m.ProofMediaKind),
			Reference:   m.ProofReference,
			SubmittedAt: m.ProofSubmittedAt.UTC(),
		}
	}
	if m.RespondedAt != nil {
		item.Response = &entities.ManagerResponse{
			Decision:    entities.ResponseDecision(m.ResponseDecision),
			Comment:     m.ResponseComment,
			RespondedAt: m.RespondedAt.UTC(),
		}
	}
	return item
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
