package timetable

// Subjects is the candidate list drawn from when a batch is generated.
// Free appears twice so generated weeks keep some open slots.
var Subjects = []string{
	"C Programming",
	"Engineering Maths",
	"Linux Lab",
	"Managing Self",
	Free,
	Free,
	"Physics",
	"Problem Solving",
	"Environmental Studies",
}
