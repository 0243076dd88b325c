package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/diogovalentte/tukangkomik/src/sources"
	"github.com/diogovalentte/tukangkomik/src/sources/mangathemesia"
)

var (
	flagPage    int
	flagStatus  string
	flagType    string
	flagOrder   string
	flagGenres  []string
	flagProject bool
)

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List the most popular mangas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		mangasPage, err := sources.GetPopularManga(cmd.Context(), id, flagPage)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), mangasPage)
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the last updated mangas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		mangasPage, err := sources.GetLatestUpdates(cmd.Context(), id, flagPage)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), mangasPage)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search mangas by title, or by filters if no query is given",
	Long: `Search mangas by title, or by filters if no query is given.
The site text search ignores the filters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}

		filterList, err := sources.GetFilterList(id)
		if err != nil {
			return err
		}
		if err = filterList.ApplyQuery(filterValues()); err != nil {
			return err
		}

		mangasPage, err := sources.SearchManga(cmd.Context(), id, flagPage, query, filterList)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), mangasPage)
	},
}

// filterValues returns the search flags as the query values the filter list is set with
func filterValues() url.Values {
	values := url.Values{}
	if flagStatus != "" {
		values.Set(mangathemesia.StatusFilterKey, flagStatus)
	}
	if flagType != "" {
		values.Set(mangathemesia.TypeFilterKey, flagType)
	}
	if flagOrder != "" {
		values.Set(mangathemesia.OrderByFilterKey, flagOrder)
	}
	for _, genre := range flagGenres {
		values.Add(mangathemesia.GenreFilterKey+"[]", genre)
	}
	if flagProject {
		values.Set(mangathemesia.ProjectFilterKey, mangathemesia.ProjectFilterOn)
	}

	return values
}

var detailsCmd = &cobra.Command{
	Use:   "details <manga URL>",
	Short: "Show the details of a manga",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		m, err := sources.GetMangaDetails(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), m)
	},
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters <manga URL>",
	Short: "List the chapters of a manga",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		chapters, err := sources.GetChapterList(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), chapters)
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages <chapter URL>",
	Short: "List the page images of a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		pages, err := sources.GetPageList(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), pages)
	},
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the search filters of the source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := sourceID()
		if err != nil {
			return err
		}

		filterList, err := sources.GetFilterList(id)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), filterList)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{popularCmd, latestCmd, searchCmd} {
		cmd.Flags().IntVarP(&flagPage, "page", "p", 1, "page number")
	}

	searchCmd.Flags().StringVar(&flagStatus, "status", "", "status filter, like 'ongoing'")
	searchCmd.Flags().StringVar(&flagType, "type", "", "type filter, like 'Manhwa'")
	searchCmd.Flags().StringVar(&flagOrder, "order", "", "order filter, like 'popular'")
	searchCmd.Flags().StringSliceVar(&flagGenres, "genre", nil, "genre filter, excluded genres start with '-'")
	searchCmd.Flags().BoolVar(&flagProject, "project", false, "show only the project mangas")

	rootCmd.AddCommand(popularCmd, latestCmd, searchCmd, detailsCmd, chaptersCmd, pagesCmd, filtersCmd)
}
