package app

// Component TypeIDs identify each component type for the router pivot algorithm.
// Each value must be unique within the application.
const (
	// Layouts
	MainLayout_TypeID uint32 = 100

	// Pages
	HomePage_TypeID   uint32 = 200
	TopicsPage_TypeID uint32 = 300
	TopicPage_TypeID  uint32 = 400

	// Shared
	NotFoundPage_TypeID uint32 = 1000
)
