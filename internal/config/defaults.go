package config

import "github.com/Ribelio/Schedule-Poster-Generator/internal/schedule"

// DefaultSchedule is the built-in book-club reading schedule, two
// volumes per week with a three-volume finale.
func DefaultSchedule() schedule.Schedule {
	return schedule.Schedule{
		{Date: "November 22, 2025", Volumes: []int{2, 3}},
		{Date: "November 29, 2025", Volumes: []int{4, 5}},
		{Date: "December 6, 2025", Volumes: []int{6, 7}},
		{Date: "December 13, 2025", Volumes: []int{8, 9}},
		{Date: "December 20, 2025", Volumes: []int{10, 11}},
		{Date: "December 27, 2025", Volumes: []int{12, 13, 14}},
	}
}

// DefaultCoverURLs is the built-in volume-to-cover-URL table. These
// take precedence over anything resolved from MangaDex, so covers that
// are missing or wrong upstream can be pinned here.
func DefaultCoverURLs() map[int]string {
	return map[int]string{
		1:  "https://m.media-amazon.com/images/I/41H1JFuv+0L.jpg",
		2:  "https://m.media-amazon.com/images/I/71Gj55-N1kL.jpg",
		3:  "https://m.media-amazon.com/images/I/71wLxeDsuUL.jpg",
		4:  "https://m.media-amazon.com/images/I/61xNxUCXEqL.jpg",
		5:  "https://m.media-amazon.com/images/I/71h0-rh4FhL.jpg",
		6:  "https://m.media-amazon.com/images/I/71s5Zu1-BzL.jpg",
		7:  "https://m.media-amazon.com/images/I/71PX3Euwa0L.jpg",
		8:  "https://m.media-amazon.com/images/I/61n17DEPKEL.jpg",
		9:  "https://m.media-amazon.com/images/I/71HN34iWcEL.jpg",
		10: "https://m.media-amazon.com/images/I/710m+JUnVWL.jpg",
		11: "https://m.media-amazon.com/images/I/81nZp9xd1-L.jpg",
		12: "https://static.wikia.nocookie.net/choujin-x/images/a/a9/Volume_12.jpg",
		13: "https://static.wikia.nocookie.net/choujin-x/images/b/b6/Volume_13.png",
		14: "https://static.wikia.nocookie.net/choujin-x/images/a/a3/Volume_14.jpg",
	}
}
