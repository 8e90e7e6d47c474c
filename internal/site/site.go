// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package site holds the static data shown on the portfolio pages: site
// metadata, social links, projects and navigation.
package site

import "strings"

// Social contact links of the author.
type Social struct {
	Email    string
	X        string
	LinkedIn string
	GitHub   string
}

// Info describes the site as a whole.
type Info struct {
	Title        string
	Author       string
	SiteURL      string
	SocialBanner string
	Description  string
	Keywords     []string
	Social       Social
	ResumeURL    string
	Avatar       string
}

// Metadata is the site-wide metadata.
var Metadata = Info{
	Title:        "Arkar Min (Kei)",
	Author:       "Arkar Min (Kei)",
	SiteURL:      "https://arkarmin-dev.vercel.app/",
	SocialBanner: "/static/dist/default-og-card.png",
	Description: "Arkar Min (Kei) - Software developer passionate about creating and sharing things " +
		"on internet about Backend development and general programming concepts",
	Keywords: []string{
		"Arkar Min (Kei)", "arkarmin", "arkar min", "kei", "Kei-K23", "kei-k23", "k23",
	},
	Social: Social{
		Email:    "arkar.dev.kei@gmail.com",
		X:        "https://x.com/amin_dev_7",
		LinkedIn: "https://www.linkedin.com/in/arkar-min-97410b308",
		GitHub:   "https://github.com/Kei-K23",
	},
	ResumeURL: "/static/dist/resume.pdf",
	Avatar:    "/static/dist/me.png",
}

// SocialLink is one icon link on the home page.
type SocialLink struct {
	Label string
	Href  string
	Icon  string // name of the inline SVG partial
}

// Socials are the social links shown under the biography.
var Socials = []SocialLink{
	{Label: "GitHub", Href: "https://github.com/Kei-K23", Icon: "github"},
	{Label: "X", Href: "https://x.com/amin_dev_7", Icon: "x"},
	{Label: "LinkedIn", Href: "https://www.linkedin.com/in/arkar-min-97410b308", Icon: "linkedin"},
}

// WebApp is a deployed web application.
type WebApp struct {
	Title       string
	Repo        string
	Demo        string
	Description string
	Tags        []string
	Thumbnail   string
}

// Tool is a published package, CLI or editor extension.
type Tool struct {
	Title       string
	Repo        string
	External    string
	Description string
	Techs       []string
}

// WebApps are listed first on the projects page.
var WebApps = []WebApp{
	{
		Title: "TaskPilot",
		Repo:  "https://github.com/Kei-K23/task-pilot",
		Demo:  "https://task-pilot-nine.vercel.app/",
		Description: "Manage, gather and navigate your tasks and projects like a pro with TaskPilot. " +
			"Simple and minimal version of Jira but every developer favorite thing, it's Open-Source. " +
			"Creating workspaces, project, tasks, kanban boards, calendars, invite system, image uploads, " +
			"analytics, authentication and more other features.",
		Tags:      []string{"Next.js", "Hono.js", "Tailwind", "ShadcnUI", "AppWrite"},
		Thumbnail: "/static/dist/projects/task-pilot.png",
	},
	{
		Title: "Mentor",
		Repo:  "https://github.com/Kei-K23/mentor",
		Demo:  "https://mentor-beta.vercel.app/",
		Description: "Mentor is an open-source web application for learning, practicing and mastering " +
			"programming languages and craft interview questions. The goal of this project is to improve " +
			"the developer community.",
		Tags:      []string{"Next.js", "Prisma", "Tailwind", "ShadcnUI", "Postgres"},
		Thumbnail: "/static/dist/projects/mentor.png",
	},
	{
		Title:       "Flow",
		Repo:        "https://github.com/Kei-K23/Flow-LMS",
		Demo:        "https://flow-lms.vercel.app/",
		Description: "Flow is modern LMS for languages with beautiful and game like system (Duolingo like system).",
		Tags:        []string{"Next.js", "Prisma", "Tailwind", "ShadcnUI", "Postgres"},
		Thumbnail:   "/static/dist/projects/flow.png",
	},
	{
		Title: "React Finder 🗂️",
		Repo:  "https://github.com/Kei-K23/react-finder",
		Demo:  "https://react-finder-gamma.vercel.app",
		Description: "Recreating interactive Mac OS file explore 'Finder' 🗂️ but this one is for web 🕸️. " +
			"I recreated most functionalities of Mac OS Finder, including UI and user interactions " +
			"functionalities and features.",
		Tags:      []string{"Next.js", "Tailwind", "ShadcnUI"},
		Thumbnail: "/static/dist/projects/react-finder.png",
	},
}

// Tools follow the web apps on the projects page.
var Tools = []Tool{
	{
		Title:       "states-nepal",
		Repo:        "https://github.com/adarshaacharya/states-nepal",
		External:    "https://www.npmjs.com/package/states-nepal",
		Description: "npm package to get the dataset about different administrative division of Nepal.",
		Techs:       []string{"npm-package"},
	},
	{
		Title:       "aaja (आज)",
		Repo:        "https://github.com/adarshaacharya/aaja",
		External:    "https://www.npmjs.com/package/aaja",
		Description: "Cli tool to get today's nepali date, tithi, public events and current time.",
		Techs:       []string{"npm-package"},
	},
	{
		Title:       "ApiHub",
		Repo:        "https://github.com/adarshaacharya/ApiHub",
		External:    "https://marketplace.visualstudio.com/items?itemName=AadarshaAcharya.api-hub",
		Description: "VS Code extension to get free third party api url on different categories.",
		Techs:       []string{"vscode-extension"},
	},
	{
		Title:       "shitcommits",
		Repo:        "https://github.com/adarshaacharya/shitcommits",
		External:    "https://www.npmjs.com/package/shitcommits",
		Description: "Cli tool to make git commits with not-so perfect messges.",
		Techs:       []string{"npm-package"},
	},
}

// NavItem is one entry of the header navigation.
type NavItem struct {
	Path   string
	Name   string
	Active bool
}

// Nav returns the header entries for the request path. The blog entry is
// only present when the blog is enabled.
func Nav(path string, blogEnabled bool) []NavItem {
	active := ActivePath(path)

	items := []NavItem{{Path: "/", Name: "home"}}
	if blogEnabled {
		items = append(items, NavItem{Path: "/blog", Name: "blog"})
	}
	items = append(items, NavItem{Path: "/projects", Name: "projects"})

	for i := range items {
		items[i].Active = items[i].Path == active
	}
	return items
}

// ActivePath maps a request path to the nav entry it belongs to.
// Every post page belongs to /blog.
func ActivePath(path string) string {
	if path == "" {
		return "/"
	}
	if strings.HasPrefix(path, "/blog/") {
		return "/blog"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
