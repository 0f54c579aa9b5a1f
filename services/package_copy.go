package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelcms/builders"
	"travelcms/constants"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/services/logger"
	"travelcms/services/metrics"
	"travelcms/services/notification"
	"travelcms/utils"
	"travelcms/validator"
)

// CopyFailure records why one package of a bulk copy failed
type CopyFailure struct {
	PackageID uint   `json:"packageId"`
	Name      string `json:"name,omitempty"`
	Error     string `json:"error"`
}

// CopyReport summarises a bulk copy
type CopyReport struct {
	Copied   []models.Package `json:"copied"`
	Failures []CopyFailure    `json:"failures"`
}

type PackageCopyService struct {
	db       *gorm.DB
	logger   logger.Logger
	cache    *Cache
	notifier notification.Service
}

type PackageCopyServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Cache    *Cache
	Notifier notification.Service
}

func NewPackageCopyService(opts PackageCopyServiceOptions) *PackageCopyService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &PackageCopyService{db: opts.DB, logger: opts.Logger, cache: opts.Cache, notifier: opts.Notifier}
}

// Copy duplicates package id with its whole graph in one transaction.
// Empty newName/newSlug use the defaults of builders.ClonePackage.
func (s *PackageCopyService) Copy(ctx context.Context, id uint, newName, newSlug string) (*models.Package, error) {
	if err := validator.ValidateSlug(newSlug); err != nil {
		return nil, err
	}
	var src, dst *models.Package
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var loaded models.Package
		if err := tx.Scopes(withTree(false)).First(&loaded, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Package not found", errors.ErrPackageNotFound)
			}
			return err
		}
		src = &loaded
		dst = builders.ClonePackage(src, newName, newSlug)

		slug, err := s.uniqueSlug(tx, dst)
		if err != nil {
			return err
		}
		dst.Slug = slug
		return insertTree(tx, dst)
	})
	metrics.ObserveCopy(err)
	if err != nil {
		s.logger.Error("copy package %d: %v", id, err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewAppError(errors.ErrCodeCopyFailed, fmt.Sprintf("Could not copy package: %v", err), err)
	}

	dst.PackageType = src.PackageType
	dst.City = src.City
	dst.URL = dst.AbsoluteURL()

	s.cache.InvalidateCatalog(ctx)
	s.logger.Info("copied package %d as %d (%s)", src.ID, dst.ID, dst.Slug)
	s.broadcast(src, dst)
	return dst, nil
}

// CopyMany copies each id independently. One failure does not stop the rest.
func (s *PackageCopyService) CopyMany(ctx context.Context, ids []uint) CopyReport {
	report := CopyReport{Copied: []models.Package{}, Failures: []CopyFailure{}}
	for _, id := range ids {
		pkg, err := s.Copy(ctx, id, "", "")
		if err != nil {
			failure := CopyFailure{PackageID: id, Error: err.Error()}
			if appErr := errors.GetAppError(err); appErr != nil {
				failure.Error = appErr.Message
			}
			var name string
			if s.db.WithContext(ctx).Model(&models.Package{}).Select("name").Where("id = ?", id).Scan(&name).Error == nil {
				failure.Name = name
			}
			report.Failures = append(report.Failures, failure)
			continue
		}
		report.Copied = append(report.Copied, *pkg)
	}
	return report
}

// uniqueSlug makes dst's slug unique within its city by suffixing -1, -2...
func (s *PackageCopyService) uniqueSlug(tx *gorm.DB, dst *models.Package) (string, error) {
	base := dst.Slug
	if base == "" {
		base = utils.Slugify(dst.Name)
	}
	if base == "" {
		return "", nil
	}
	return utils.UniqueSlug(base, func(candidate string) (bool, error) {
		q := tx.Model(&models.Package{}).Where("slug = ?", candidate)
		if dst.CityID == nil {
			q = q.Where("city_id IS NULL")
		} else {
			q = q.Where("city_id = ?", *dst.CityID)
		}
		var count int64
		err := q.Count(&count).Error
		return count > 0, err
	})
}

// insertTree writes pkg and its children level by level, keeping slice order
func insertTree(tx *gorm.DB, pkg *models.Package) error {
	tags := pkg.Tags
	if err := tx.Omit(clause.Associations).Create(pkg).Error; err != nil {
		return err
	}
	if len(tags) > 0 {
		if err := tx.Model(pkg).Association("Tags").Append(tags); err != nil {
			return err
		}
	}
	for pi := range pkg.Periods {
		period := &pkg.Periods[pi]
		period.PackageID = pkg.ID
		if err := tx.Omit(clause.Associations).Create(period).Error; err != nil {
			return err
		}
		for hi := range period.Hotels {
			hotel := &period.Hotels[hi]
			hotel.PeriodID = period.ID
			if err := tx.Omit(clause.Associations).Create(hotel).Error; err != nil {
				return err
			}
			for ri := range hotel.RoomTypes {
				roomType := &hotel.RoomTypes[ri]
				roomType.HotelID = hotel.ID
				if err := tx.Omit(clause.Associations).Create(roomType).Error; err != nil {
					return err
				}
				for i := range roomType.Prices {
					roomType.Prices[i].RoomTypeID = roomType.ID
					if err := tx.Create(&roomType.Prices[i]).Error; err != nil {
						return err
					}
				}
				for i := range roomType.Images {
					roomType.Images[i].RoomTypeID = roomType.ID
					if err := tx.Create(&roomType.Images[i]).Error; err != nil {
						return err
					}
				}
			}
		}
	}
	for di := range pkg.DailyItineraries {
		day := &pkg.DailyItineraries[di]
		day.PackageID = pkg.ID
		if err := tx.Omit(clause.Associations).Create(day).Error; err != nil {
			return err
		}
		for i := range day.Images {
			day.Images[i].ItineraryID = day.ID
			if err := tx.Create(&day.Images[i]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *PackageCopyService) broadcast(src, dst *models.Package) {
	if s.notifier == nil {
		return
	}
	msg := notification.NewMessageBuilder(constants.EventPackageCopied).
		Message("Package %q copied as %q", src.Name, dst.Name).
		With("sourceId", src.ID).
		With("packageId", dst.ID).
		With("slug", dst.Slug).
		Build()
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Debug("broadcast copy event: %v", err)
	}
}
