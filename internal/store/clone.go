package store

import (
	"maps"
	"slices"

	"github.com/veloura/go-storefront/schema"
)

func cloneGlobalSettings(in schema.GlobalSettings) schema.GlobalSettings {
	out := in
	out.DefaultSEO.Keywords = slices.Clone(in.DefaultSEO.Keywords)
	out.AccountLinks = slices.Clone(in.AccountLinks)
	out.Policies = slices.Clone(in.Policies)

	if in.MainNavigation != nil {
		out.MainNavigation = make([]schema.NavItem, len(in.MainNavigation))
		for i, item := range in.MainNavigation {
			item.Children = slices.Clone(item.Children)
			out.MainNavigation[i] = item
		}
	}

	out.Footer.SocialLinks = slices.Clone(in.Footer.SocialLinks)
	if in.Footer.LinkGroups != nil {
		out.Footer.LinkGroups = make([]schema.LinkGroup, len(in.Footer.LinkGroups))
		for i, group := range in.Footer.LinkGroups {
			group.Links = slices.Clone(group.Links)
			out.Footer.LinkGroups[i] = group
		}
	}
	return out
}

func clonePage(in schema.Page) schema.Page {
	out := in
	if in.Sections != nil {
		out.Sections = make([]schema.Section, len(in.Sections))
		for i, section := range in.Sections {
			out.Sections[i] = cloneSection(section)
		}
	}
	return out
}

func cloneSection(in schema.Section) schema.Section {
	out := in
	if in.Hero != nil {
		hero := *in.Hero
		if in.Hero.PrimaryCTA != nil {
			cta := *in.Hero.PrimaryCTA
			hero.PrimaryCTA = &cta
		}
		if in.Hero.SecondaryCTA != nil {
			cta := *in.Hero.SecondaryCTA
			hero.SecondaryCTA = &cta
		}
		out.Hero = &hero
	}
	if in.CardGrid != nil {
		grid := *in.CardGrid
		grid.Cards = slices.Clone(in.CardGrid.Cards)
		out.CardGrid = &grid
	}
	if in.Generic != nil {
		generic := *in.Generic
		out.Generic = &generic
	}
	return out
}

func cloneDictionaryEntry(in schema.DictionaryEntry) schema.DictionaryEntry {
	out := in
	if in.JSONValue != nil {
		out.JSONValue = maps.Clone(in.JSONValue)
	}
	return out
}

func cloneMediaAsset(in schema.MediaAsset) schema.MediaAsset {
	out := in
	if in.File != nil {
		file := *in.File
		if in.File.Formats != nil {
			file.Formats = maps.Clone(in.File.Formats)
		}
		out.File = &file
	}
	return out
}
