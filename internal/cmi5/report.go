package cmi5

// Milestone reporting methods. Each builds the statement on the caller
// goroutine and hands it to the dispatch queue; gameplay never blocks
// on the LRS. These satisfy the reporter interfaces the sequencer and
// battle engine define.

func (b *Bridge) WorldEntered(worldID int, name string) {
	b.Enqueue(b.session.WorldEntered(worldID, name))
}

func (b *Bridge) LessonStarted(worldID int, lessonID, name string) {
	b.Enqueue(b.session.LessonStarted(worldID, lessonID, name))
}

func (b *Bridge) StepProgressed(worldID int, lessonID string, stepIndex int, phase, kind string) {
	b.Enqueue(b.session.StepProgressed(worldID, lessonID, stepIndex, phase, kind))
}

func (b *Bridge) LessonCompleted(worldID int, lessonID, name string) {
	b.Enqueue(b.session.LessonCompleted(worldID, lessonID, name))
}

func (b *Bridge) LessonReviewed(worldID int, lessonID, name string) {
	b.Enqueue(b.session.LessonReviewed(worldID, lessonID, name))
}

func (b *Bridge) QuestionAnswered(worldID, questionIndex int, correct bool, text string) {
	b.Enqueue(b.session.QuestionAnswered(worldID, questionIndex, correct, text))
}

func (b *Bridge) BossAssessed(worldID int, name string, score, maxScore int, mastery float64) {
	b.Enqueue(b.session.BossAssessed(worldID, name, score, maxScore, mastery))
}

func (b *Bridge) ExamAssessed(score, maxScore int, passed bool) {
	b.Enqueue(b.session.ExamAssessed(score, maxScore, passed))
}

func (b *Bridge) LevelAchieved(level, totalXP int) {
	b.Enqueue(b.session.LevelAchieved(level, totalXP))
}

func (b *Bridge) WorldCompleted(worldID int, name string) {
	b.Enqueue(b.session.WorldCompleted(worldID, name))
}

// CourseAssessed emits the completed statement followed by the course
// pass/fail result, in that order.
func (b *Bridge) CourseAssessed(scaled float64, passed bool) {
	b.Enqueue(b.session.CourseCompleted())
	b.Enqueue(b.session.CourseAssessed(scaled, passed))
}

func (b *Bridge) ProgressReported(percent int) {
	b.Enqueue(b.session.ProgressReported(percent))
}
