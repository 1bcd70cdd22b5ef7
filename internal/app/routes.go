package app

import (
	"github.com/vcrobe/topics-ui/components/navbar"
	"github.com/vcrobe/topics-ui/internal/app/components/layouts"
	"github.com/vcrobe/topics-ui/internal/app/components/pages"
	"github.com/vcrobe/topics-ui/internal/app/topics"
	"github.com/vcrobe/topics-ui/router"
	"github.com/vcrobe/topics-ui/runtime"
)

func registerRoutes(routerEngine *router.Engine, mainLayout *layouts.MainLayout, catalog *topics.Catalog) {
	ml := func(p map[string]string) runtime.Component { return mainLayout }

	routerEngine.RegisterRoutes([]router.Route{
		{
			Path: navbar.HomeRoute,
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: func(p map[string]string) runtime.Component { return &pages.HomePage{} }, TypeID: HomePage_TypeID},
			},
		},
		{
			Path: navbar.ExploreRoute,
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: func(p map[string]string) runtime.Component { return &pages.TopicsPage{Catalog: catalog} }, TypeID: TopicsPage_TypeID},
			},
		},
		{
			Path: navbar.ExploreRoute + "/{topic}",
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: func(p map[string]string) runtime.Component {
					return &pages.TopicPage{Catalog: catalog, Slug: p["topic"]}
				}, TypeID: TopicPage_TypeID},
			},
		},
	})

	routerEngine.HandleNotFound([]router.ComponentMetadata{
		{Factory: ml, TypeID: MainLayout_TypeID},
		{Factory: func(p map[string]string) runtime.Component { return &pages.NotFoundPage{Path: p["path"]} }, TypeID: NotFoundPage_TypeID},
	})
}
