package models

// School — карточка учебного заведения. RegisterCount — число
// зарегистрированных пользователей.
type School struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Imgurl        string `json:"imgurl"`
	RegisterCount int    `json:"register_count"`
}

// SchoolList — список школ с длиной.
type SchoolList struct {
	Len   int      `json:"len"`
	Items []School `json:"items"`
}

// SampleSchools возвращает фиксированный список из восьми школ.
func SampleSchools() SchoolList {
	names := []struct {
		name  string
		count int
	}{
		{"University of Combridge", 100},
		{"University of Oxford", 10},
		{"Imperial College London", 8},
		{"University College London", 8},
	}

	items := make([]School, 0, 2*len(names))
	for i := 0; i < 2; i++ {
		for _, n := range names {
			items = append(items, School{
				ID:            len(items) + 1,
				Name:          n.name,
				Imgurl:        sampleImage,
				RegisterCount: n.count,
			})
		}
	}
	return SchoolList{Len: len(items), Items: items}
}
