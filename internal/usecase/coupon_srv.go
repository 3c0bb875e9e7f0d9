package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"cinema-platform/internal/converter"
	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CouponService interface {
	Get(ctx context.Context, code string) ([]dto.CouponDto, error)
	GetByID(ctx context.Context, paramID string) (*dto.CouponDto, error)
	Create(ctx context.Context, d dto.CouponDto) (string, error)
	Update(ctx context.Context, paramID string, d dto.CouponDto) (string, error)
	Patch(ctx context.Context, paramID string, body []byte) (*dto.CouponDto, error)
	Delete(ctx context.Context, paramID string) (string, error)
}

type couponService struct {
	couponRepo repository.CouponRepository
	log        *zap.Logger
}

func NewCouponService(couponRepo repository.CouponRepository, log *zap.Logger) CouponService {
	return &couponService{
		couponRepo: couponRepo,
		log:        log.With(zap.String("service", "coupon")),
	}
}

// Get returns the coupon with the given code, or all coupons when code is
// blank. A code lookup that matches nothing is a not-found, since the caller
// asked for exactly one.
func (s *couponService) Get(ctx context.Context, code string) ([]dto.CouponDto, error) {
	if code != "" {
		coupon, err := s.couponRepo.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			errorMsg := apperror.NotFoundMessage("coupon", "code", code)
			s.log.Warn(errorMsg)
			return nil, apperror.NewNotFound(errorMsg)
		}
		return []dto.CouponDto{converter.CouponToDto(coupon)}, nil
	}

	coupons, err := s.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return converter.CouponListToDtoList(coupons), nil
}

func (s *couponService) GetByID(ctx context.Context, paramID string) (*dto.CouponDto, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		errorMsg := apperror.NotFoundMessage("coupon", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	result := converter.CouponToDto(coupon)
	return &result, nil
}

func (s *couponService) Create(ctx context.Context, d dto.CouponDto) (string, error) {
	if d.ID != "" {
		errorMsg := apperror.IllegalParameter("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidation(errorMsg)
	}

	if err := requireFields(s.log, map[string]bool{
		"code":        d.Code == "",
		"description": d.Description == "",
		"expireAt":    d.ExpireAt == "",
		"percentage":  d.Percentage == nil,
	}, "code", "description", "expireAt", "percentage"); err != nil {
		return "", err
	}

	if err := validatePercentage(s.log, *d.Percentage); err != nil {
		return "", err
	}

	expireAt, err := parseCouponExpireAt(d.ExpireAt)
	if err != nil {
		s.log.Warn(err.Error())
		return "", err
	}

	exists, err := s.couponRepo.ExistsByCode(ctx, d.Code)
	if err != nil {
		return "", err
	}
	if exists {
		errorMsg := apperror.ResourceAlreadyExists("coupon", "code", d.Code)
		s.log.Warn(errorMsg)
		return "", apperror.NewConflict(errorMsg)
	}

	coupon := &entity.Coupon{
		Code:        d.Code,
		Description: d.Description,
		ExpireAt:    expireAt,
		Percentage:  *d.Percentage,
	}

	id, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		return "", err
	}

	idStr := strconv.FormatInt(id, 10)
	s.log.Info(apperror.EntityCreated("coupon", idStr))

	return idStr, nil
}

func (s *couponService) Update(ctx context.Context, paramID string, d dto.CouponDto) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := requireFields(s.log, map[string]bool{
		"id":          d.ID == "",
		"code":        d.Code == "",
		"description": d.Description == "",
		"expireAt":    d.ExpireAt == "",
		"percentage":  d.Percentage == nil,
	}, "id", "code", "description", "expireAt", "percentage"); err != nil {
		return "", err
	}

	if d.ID != paramID {
		errorMsg := apperror.NotMatchingIds("id")
		s.log.Warn(errorMsg)
		return "", apperror.NewUserInputValidationWithStatus(errorMsg, 409)
	}

	if err := validatePercentage(s.log, *d.Percentage); err != nil {
		return "", err
	}

	expireAt, err := parseCouponExpireAt(d.ExpireAt)
	if err != nil {
		s.log.Warn(err.Error())
		return "", err
	}

	coupon := &entity.Coupon{
		ID:          id,
		Code:        d.Code,
		Description: d.Description,
		ExpireAt:    expireAt,
		Percentage:  *d.Percentage,
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("coupon", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityUpdated("coupon", paramID))
	return paramID, nil
}

func (s *couponService) Patch(ctx context.Context, paramID string, body []byte) (*dto.CouponDto, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		errorMsg := apperror.NotFoundMessage("coupon", "id", paramID)
		s.log.Warn(errorMsg)
		return nil, apperror.NewNotFound(errorMsg)
	}

	fields, err := decodePatch(s.log, body)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["code"]; ok {
		if err := patchString(s.log, raw, "code", &coupon.Code); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["description"]; ok {
		if err := patchString(s.log, raw, "description", &coupon.Description); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["expireAt"]; ok {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			errorMsg := apperror.UnableToParse("expireAt")
			s.log.Warn(errorMsg)
			return nil, apperror.NewUserInputValidation(errorMsg)
		}

		expireAt, err := parseCouponExpireAt(value)
		if err != nil {
			s.log.Warn(err.Error())
			return nil, err
		}
		coupon.ExpireAt = expireAt
	}

	if raw, ok := fields["percentage"]; ok {
		if err := patchInt(s.log, raw, "percentage", &coupon.Percentage); err != nil {
			return nil, err
		}
		if err := validatePercentage(s.log, coupon.Percentage); err != nil {
			return nil, err
		}
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	s.log.Info(apperror.EntityUpdated("coupon", paramID))

	result := converter.CouponToDto(coupon)
	return &result, nil
}

func (s *couponService) Delete(ctx context.Context, paramID string) (string, error) {
	id, err := validation.ValidateID(paramID, "id")
	if err != nil {
		return "", err
	}

	if err := s.couponRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			errorMsg := apperror.NotFoundMessage("coupon", "id", paramID)
			s.log.Warn(errorMsg)
			return "", apperror.NewNotFound(errorMsg)
		}
		return "", err
	}

	s.log.Info(apperror.EntityDeleted("coupon", paramID))
	return paramID, nil
}

func validatePercentage(log *zap.Logger, percentage int) error {
	if percentage < 0 || percentage > 100 {
		errorMsg := apperror.PercentageOutOfRange()
		log.Warn(errorMsg, zap.Int("percentage", percentage))
		return apperror.NewUserInputValidation(errorMsg)
	}
	return nil
}

// parseCouponExpireAt accepts the client input format "yyyy-MM-dd HH:mm:ss"
// and pads it to microsecond precision before validation.
func parseCouponExpireAt(raw string) (time.Time, error) {
	formatted := fmt.Sprintf("%s.000000", raw)

	validated, err := validation.ValidateTimeFormat(formatted)
	if err != nil {
		return time.Time{}, err
	}

	return validation.ParseTimestamp(validated)
}
