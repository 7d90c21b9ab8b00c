package app

// Stage identifies one step of the scaffold pipeline.
type Stage string

const (
	StageGenerate  Stage = "generate"
	StageInstall   Stage = "install"
	StageStyling   Stage = "styling"
	StageRouting   Stage = "routing"
	StageStructure Stage = "structure"
	StageStarter   Stage = "starter"
	StageDocs      Stage = "docs"
)

var stageLabels = map[Stage]string{
	StageGenerate:  "Creating project",
	StageInstall:   "Installing dependencies",
	StageStyling:   "Setting up Tailwind CSS",
	StageRouting:   "Setting up routing",
	StageStructure: "Creating folder structure",
	StageStarter:   "Creating homepage",
	StageDocs:      "Writing documentation",
}

// Label returns the progress text for the stage.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// StageStatus is how a stage ended.
type StageStatus int

const (
	// StageDone means the stage completed.
	StageDone StageStatus = iota
	// StageWarning means a non-fatal stage completed partially.
	StageWarning
	// StageFailed means a fatal stage failed and the run stopped.
	StageFailed
	// StagePlanned means the stage would run (dry run).
	StagePlanned
)

// String returns the status name.
func (s StageStatus) String() string {
	switch s {
	case StageDone:
		return "done"
	case StageWarning:
		return "warning"
	case StageFailed:
		return "failed"
	default:
		return "planned"
	}
}

// StageResult records the outcome of one stage.
type StageResult struct {
	Stage    Stage
	Status   StageStatus
	Detail   string
	Warnings []string
}

// Reporter receives stage progress. Implementations must not block.
type Reporter interface {
	StageStarted(stage Stage)
	StageFinished(result StageResult)
}

type nopReporter struct{}

func (nopReporter) StageStarted(Stage)        {}
func (nopReporter) StageFinished(StageResult) {}

// stageLog accumulates stage results and forwards them to a Reporter.
type stageLog struct {
	reporter Reporter
	results  []StageResult
}

func newStageLog(r Reporter) *stageLog {
	if r == nil {
		r = nopReporter{}
	}
	return &stageLog{reporter: r}
}

func (l *stageLog) start(s Stage) {
	l.reporter.StageStarted(s)
}

func (l *stageLog) finish(res StageResult) {
	l.results = append(l.results, res)
	l.reporter.StageFinished(res)
}

func (l *stageLog) done(s Stage, detail string) {
	l.finish(StageResult{Stage: s, Status: StageDone, Detail: detail})
}

func (l *stageLog) fail(s Stage, err error) {
	l.finish(StageResult{Stage: s, Status: StageFailed, Detail: err.Error()})
}
