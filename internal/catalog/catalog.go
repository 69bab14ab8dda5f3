package catalog

type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

type Lesson struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
	Duration int    `json:"duration"` // 秒
}

type Course struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       Level    `json:"level"`
	Lessons     []Lesson `json:"lessons"`
}

// Catalog 固定顺序的课程目录。目录顺序即先修顺序：
// 某课程的先修课是目录中紧挨它的前一门课。运行期不可变。
type Catalog struct {
	courses []Course
	index   map[uint]int
}

func New(courses []Course) *Catalog {
	index := make(map[uint]int, len(courses))
	for i, c := range courses {
		index[c.ID] = i
	}
	return &Catalog{courses: courses, index: index}
}

func (c *Catalog) Courses() []Course {
	return c.courses
}

func (c *Catalog) Course(id uint) (Course, bool) {
	i, ok := c.index[id]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

// IndexOf 返回课程在目录中的位置，未知课程返回 -1
func (c *Catalog) IndexOf(id uint) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

func (c *Catalog) Len() int {
	return len(c.courses)
}

func (c *Catalog) Lesson(courseID, lessonID uint) (Lesson, bool) {
	course, ok := c.Course(courseID)
	if !ok {
		return Lesson{}, false
	}
	for _, l := range course.Lessons {
		if l.ID == lessonID {
			return l, true
		}
	}
	return Lesson{}, false
}
