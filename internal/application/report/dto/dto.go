package dto

type StoreCount struct {
	StoreID string `json:"store_id"`
	Count   int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type OverviewDTO struct {
	TotalTickets  int64           `json:"totalTickets"`
	TopStores     []StoreCount    `json:"topStores"`
	TopCategories []CategoryCount `json:"topCategories"`
}

type StoreCategoryDTO struct {
	StoreID  string `json:"store_id"`
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type TimelineDTO struct {
	Days     int        `json:"days"`
	Timeline []DayCount `json:"timeline"`
}
