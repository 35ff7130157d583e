package entity

// TaskStatus is the fixed progress enumeration for tasks.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "NOT_STARTED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Project is the secondary board entity. It is a data shape only: no
// reconciliation or undo history exists for projects yet.
type Project struct {
	ID          string
	Title       string
	Description string
	DueDate     *int64
	Archived    bool
	Pinned      bool
	Trashed     bool
	Tasks       []Task
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
}

type ProjectRecord struct {
	ID          string       `json:"id" validate:"required"`
	Title       string       `json:"title" validate:"max=1000"`
	Description string       `json:"description,omitempty"`
	DueDate     *int64       `json:"dueDate"`
	IsArchived  bool         `json:"isArchived"`
	IsPinned    bool         `json:"isPinned"`
	IsTrash     bool         `json:"isTrash"`
	Tasks       []TaskRecord `json:"tasks" validate:"dive"`
}

type TaskRecord struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required,max=1000"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status" validate:"required,taskstatus"`
}

func (p *Project) Record() *ProjectRecord {
	rec := &ProjectRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		IsArchived:  p.Archived,
		IsPinned:    p.Pinned,
		IsTrash:     p.Trashed,
		Tasks:       make([]TaskRecord, len(p.Tasks)),
	}
	if p.DueDate != nil {
		due := *p.DueDate
		rec.DueDate = &due
	}
	for i, task := range p.Tasks {
		rec.Tasks[i] = TaskRecord{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Status:      string(task.Status),
		}
	}
	return rec
}

func ParseProjectRecord(rec *ProjectRecord) (*Project, error) {
	if rec == nil {
		return nil, newValidationError("record", "record is nil")
	}

	if err := validate.Struct(rec); err != nil {
		return nil, fromValidatorError(err)
	}

	project := &Project{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Archived:    rec.IsArchived,
		Pinned:      rec.IsPinned,
		Trashed:     rec.IsTrash,
		Tasks:       make([]Task, len(rec.Tasks)),
	}
	if rec.DueDate != nil {
		due := *rec.DueDate
		project.DueDate = &due
	}
	for i, task := range rec.Tasks {
		project.Tasks[i] = Task{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Status:      TaskStatus(task.Status),
		}
	}
	return project, nil
}
