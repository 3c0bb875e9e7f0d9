package usecase_test

import (
	"context"
	"testing"

	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func intPtr(v int) *int { return &v }

func newCouponService() (usecase.CouponService, *fakeCouponRepo) {
	repo := newFakeCouponRepo()
	return usecase.NewCouponService(repo, zap.NewNop()), repo
}

func TestCouponCreateAndGetByCode(t *testing.T) {
	service, _ := newCouponService()
	ctx := context.Background()

	id, err := service.Create(ctx, dto.CouponDto{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	})

	assert.NoError(t, err)
	assert.Equal(t, "1", id)

	coupons, err := service.Get(ctx, "SUMMER10")
	assert.NoError(t, err)
	if assert.Len(t, coupons, 1) {
		assert.Equal(t, "10% off", coupons[0].Description)
		assert.Equal(t, 10, *coupons[0].Percentage)
		assert.Equal(t, "2018-12-12 20:20:00.000000", coupons[0].ExpireAt)
	}
}

func TestCouponGetByCode_Unknown(t *testing.T) {
	service, _ := newCouponService()

	_, err := service.Get(context.Background(), "NOPE")

	var notFound *apperror.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "no coupon with code NOPE found", notFound.Message)
	}
}

func TestCouponCreate_RejectsClientID(t *testing.T) {
	service, _ := newCouponService()

	_, err := service.Create(context.Background(), dto.CouponDto{
		ID:          "5",
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	})

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "illegal parameter: id", validationErr.Message)
	}
}

func TestCouponCreate_MissingFieldsReportedInOrder(t *testing.T) {
	service, _ := newCouponService()

	_, err := service.Create(context.Background(), dto.CouponDto{
		Code:     "SUMMER10",
		ExpireAt: "2018-12-12 20:20:00",
	})

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "missing required field: description", validationErr.Message)
	}
}

func TestCouponCreate_PercentageOutOfRange(t *testing.T) {
	service, _ := newCouponService()

	_, err := service.Create(context.Background(), dto.CouponDto{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(120),
	})

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "percentage must be between 0 and 100", validationErr.Message)
	}
}

func TestCouponCreate_DuplicateCode(t *testing.T) {
	service, _ := newCouponService()
	ctx := context.Background()

	coupon := dto.CouponDto{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	}

	_, err := service.Create(ctx, coupon)
	assert.NoError(t, err)

	_, err = service.Create(ctx, coupon)

	var conflict *apperror.ConflictError
	if assert.ErrorAs(t, err, &conflict) {
		assert.Equal(t, "coupon with code SUMMER10 already exists", conflict.Message)
		assert.Equal(t, 409, conflict.Status)
	}
}

func TestCouponUpdate_NotMatchingIds(t *testing.T) {
	service, _ := newCouponService()

	_, err := service.Update(context.Background(), "1", dto.CouponDto{
		ID:          "2",
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	})

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "not matching id in request path and body", validationErr.Message)
		assert.Equal(t, 409, validationErr.Status)
	}
}

func TestCouponPatch_RejectsID(t *testing.T) {
	service, _ := newCouponService()
	ctx := context.Background()

	id, err := service.Create(ctx, dto.CouponDto{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	})
	assert.NoError(t, err)

	_, err = service.Patch(ctx, id, []byte(`{"id": "9"}`))

	var validationErr *apperror.UserInputValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, "illegal parameter: id", validationErr.Message)
	}
}

func TestCouponPatch_UpdatesPercentage(t *testing.T) {
	service, repo := newCouponService()
	ctx := context.Background()

	id, err := service.Create(ctx, dto.CouponDto{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	})
	assert.NoError(t, err)

	patched, err := service.Patch(ctx, id, []byte(`{"percentage": 25, "description": "25% off"}`))

	assert.NoError(t, err)
	assert.Equal(t, 25, *patched.Percentage)
	assert.Equal(t, "25% off", patched.Description)
	assert.Equal(t, 25, repo.coupons[1].Percentage)
}

func TestCouponPatch_InvalidJSON(t *testing.T) {
	service, _ := newCouponService()
	ctx := context.Background()

	id, err := service.Create(ctx, dto.CouponDto{
		Code:        "SUMMER10",
		Description: "10% off",
		ExpireAt:    "2018-12-12 20:20:00",
		Percentage:  intPtr(10),
	})
	assert.NoError(t, err)

	_, err = service.Patch(ctx, id, []byte(`{"percentage":`))

	var validationErr *apperror.UserInputValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCouponDelete_NotFound(t *testing.T) {
	service, _ := newCouponService()

	_, err := service.Delete(context.Background(), "99")

	var notFound *apperror.NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "no coupon with id 99 found", notFound.Message)
	}
}
