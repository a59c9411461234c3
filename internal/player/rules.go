package player

import "github.com/jsalter/cmi5quest/internal/catalog"

// MaxLevel caps progression; XP past the cap still accumulates in
// TotalXP but triggers no further level-ups.
const MaxLevel = 10

// xpTable holds cumulative XP thresholds per level. The per-level cost
// of level N is xpTable[N] - xpTable[N-1].
var xpTable = [MaxLevel + 1]int{0, 100, 250, 450, 700, 1000, 1400, 1900, 2500, 3200, 4000}

// classBonusCategory maps each class to the lesson category it earns
// bonus XP in.
var classBonusCategory = map[Class]catalog.Category{
	ClassDeveloper: catalog.CategoryCode,
	ClassDesigner:  catalog.CategoryContent,
	ClassAdmin:     catalog.CategoryConfig,
}

// classBonusMult is the XP multiplier applied on a class/category match.
const classBonusMult = 1.5

// skillUnlocks maps level thresholds to the skill granted on reaching
// them. Level 1 grants nothing.
var skillUnlocks = map[int]Skill{
	2:  {Name: "XML NOVICE", Desc: "Basic understanding of cmi5.xml structure"},
	3:  {Name: "CONTENT CRAFTER", Desc: "Can create effective learning content"},
	4:  {Name: "PACKAGE MASTER", Desc: "Understands ZIP packaging requirements"},
	5:  {Name: "UPLOAD WARRIOR", Desc: "Can navigate PCTE upload process"},
	6:  {Name: "XAPI APPRENTICE", Desc: "Understands xAPI statements"},
	7:  {Name: "DEBUG KNIGHT", Desc: "Can troubleshoot common issues"},
	8:  {Name: "INTEGRATION SAGE", Desc: "Masters LMS integration"},
	9:  {Name: "CMI5 CHAMPION", Desc: "Near-mastery of CMI5 standard"},
	10: {Name: "LEGENDARY TRAINER", Desc: "Complete mastery achieved!"},
}

// SkillForLevel returns the skill unlocked at the given level, if any.
func SkillForLevel(level int) (Skill, bool) {
	s, ok := skillUnlocks[level]
	return s, ok
}

// ComputeAward applies the class bonus to a base XP amount. Categories
// outside the bonus table (boss, practice, interactive, replay) pass
// through unmodified.
func ComputeAward(base int, category catalog.Category, class Class) int {
	if classBonusCategory[class] == category {
		return int(float64(base) * classBonusMult)
	}
	return base
}

// LevelUp describes one level gained while applying an XP award.
type LevelUp struct {
	Level int
	Skill *Skill // nil if the level grants no new skill
}

// AddXP grants XP and resolves any resulting level-ups in order. Each
// level-up raises max HP by 10 and fully heals.
func (s *State) AddXP(amount int) []LevelUp {
	s.XP += amount
	s.TotalXP += amount

	var ups []LevelUp
	for s.XP >= s.XPToNext && s.Level < MaxLevel {
		ups = append(ups, s.levelUp())
	}
	return ups
}

func (s *State) levelUp() LevelUp {
	s.Level++
	s.XP -= s.XPToNext
	s.XPToNext = xpTable[s.Level] - xpTable[s.Level-1]
	s.MaxHP += 10
	s.HP = s.MaxHP

	up := LevelUp{Level: s.Level}
	if skill, ok := skillUnlocks[s.Level]; ok {
		if !s.hasSkill(skill.Name) {
			s.Skills = append(s.Skills, skill)
		}
		up.Skill = &skill
	}
	return up
}

func (s *State) hasSkill(name string) bool {
	for _, sk := range s.Skills {
		if sk.Name == name {
			return true
		}
	}
	return false
}
