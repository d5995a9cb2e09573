package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/utils"
	"gorm.io/gorm"
)

// ActivityService handles business logic for logged work intervals
type ActivityService struct {
	activityRepo *repositories.ActivityRepository
	taskRepo     *repositories.TaskRepository
	userRepo     *repositories.UserRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService() *ActivityService {
	return &ActivityService{
		activityRepo: repositories.NewActivityRepository(),
		taskRepo:     repositories.NewTaskRepository(),
		userRepo:     repositories.NewUserRepository(),
	}
}

// ListActivities retrieves activities matching the filter
func (s *ActivityService) ListActivities(filter dto.ActivityFilter) ([]dto.ActivityView, error) {
	repoFilter := repositories.ActivityFilter{
		Description: filter.Description,
		UserUUID:    filter.UserUUID,
		TaskUUID:    filter.TaskUUID,
	}

	if filter.BeginDate != nil {
		begin, err := utils.ParseDateTime(*filter.BeginDate)
		if err != nil {
			return nil, err
		}
		repoFilter.BeginDate = &begin
	}
	if filter.EndDate != nil {
		end, err := utils.ParseDateTime(*filter.EndDate)
		if err != nil {
			return nil, err
		}
		repoFilter.EndDate = &end
	}
	if filter.HourlyRateMin != nil {
		min, err := utils.ParseBRL(*filter.HourlyRateMin)
		if err != nil {
			return nil, err
		}
		repoFilter.HourlyRateMin = &min
	}
	if filter.HourlyRateMax != nil {
		max, err := utils.ParseBRL(*filter.HourlyRateMax)
		if err != nil {
			return nil, err
		}
		repoFilter.HourlyRateMax = &max
	}

	activities, err := s.activityRepo.Find(repoFilter)
	if err != nil {
		return nil, errs.Server("failed to retrieve activities", err)
	}

	views := make([]dto.ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, buildActivityView(activity))
	}
	return views, nil
}

// CreateActivity logs a new work interval against an activity task
func (s *ActivityService) CreateActivity(req dto.CreateActivityRequest) (dto.ActivityView, error) {
	activity, err := s.activityFromRequest("", req.Description, req.BeginDate, req.EndDate, req.HourlyRate, req.UserUUID, req.TaskUUID)
	if err != nil {
		return dto.ActivityView{}, err
	}

	activity, err = s.activityRepo.Create(activity)
	if err != nil {
		return dto.ActivityView{}, errs.Server("failed to create activity", err)
	}
	return buildActivityView(activity), nil
}

// UpdateActivity modifies a logged work interval
func (s *ActivityService) UpdateActivity(req dto.UpdateActivityRequest) error {
	existing, err := s.findActivity(req.UUID)
	if err != nil {
		return err
	}

	activity, err := s.activityFromRequest(req.UUID, req.Description, req.BeginDate, req.EndDate, req.HourlyRate, req.UserUUID, req.TaskUUID)
	if err != nil {
		return err
	}
	activity.CreatedAt = existing.CreatedAt

	if err := s.activityRepo.Update(activity); err != nil {
		return errs.Server("failed to update activity", err)
	}
	return nil
}

// DeleteActivity removes a logged work interval
func (s *ActivityService) DeleteActivity(uuid string) error {
	if _, err := s.findActivity(uuid); err != nil {
		return err
	}
	if err := s.activityRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete activity", err)
	}
	return nil
}

func (s *ActivityService) findActivity(uuid string) (models.Activity, error) {
	activity, err := s.activityRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, errs.NotFound("activity not found")
		}
		return models.Activity{}, errs.Server("failed to look up activity", err)
	}
	return activity, nil
}

// activityFromRequest validates the interval, its owner and its parent task.
// Activities can only hang off activity-kind tasks.
func (s *ActivityService) activityFromRequest(uuid, description, beginDate, endDate, hourlyRate, userUUID, taskUUID string) (models.Activity, error) {
	begin, err := utils.ParseDateTime(beginDate)
	if err != nil {
		return models.Activity{}, err
	}
	end, err := utils.ParseDateTime(endDate)
	if err != nil {
		return models.Activity{}, err
	}
	if begin.After(end) {
		return models.Activity{}, errs.Validation("end date cannot precede begin date")
	}

	rate, err := utils.ParseBRL(hourlyRate)
	if err != nil {
		return models.Activity{}, err
	}

	task, err := s.taskRepo.FindByUUID(taskUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, errs.NotFound("task not found")
		}
		return models.Activity{}, errs.Server("failed to look up task", err)
	}
	if task.Type != models.TaskTypeActivity {
		return models.Activity{}, errs.Validation("activities can only be logged against activity tasks")
	}

	if _, err := s.userRepo.FindByUUID(userUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, errs.NotFound("user not found")
		}
		return models.Activity{}, errs.Server("failed to look up user", err)
	}

	return models.Activity{
		UUID:        uuid,
		Description: description,
		BeginDate:   begin,
		EndDate:     end,
		HourlyRate:  rate,
		UserUUID:    userUUID,
		TaskUUID:    taskUUID,
	}, nil
}

func buildActivityView(activity models.Activity) dto.ActivityView {
	return dto.ActivityView{
		UUID:        activity.UUID,
		Description: activity.Description,
		BeginDate:   utils.FormatDateTime(activity.BeginDate),
		EndDate:     utils.FormatDateTime(activity.EndDate),
		HourlyRate:  utils.FormatBRL(activity.HourlyRate),
		UserUUID:    activity.UserUUID,
		TaskUUID:    activity.TaskUUID,
	}
}
