package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"notekeep/internal/config"
	"notekeep/internal/domain/entity"
	"notekeep/internal/session"
)

var colorNames = map[string]entity.NoteColor{
	"default": entity.ColorDefault,
	"red":     entity.ColorRed,
	"yellow":  entity.ColorYellow,
	"green":   entity.ColorGreen,
	"blue":    entity.ColorBlue,
}

func newListCmd() *cobra.Command {
	var archived, trash bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes (active view by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			var notes []*entity.Note
			switch {
			case trash:
				notes = a.engine.Store().Trashed()
			case archived:
				notes = a.engine.Store().Archived()
			default:
				notes = a.engine.Store().Active()
			}
			printNotes(notes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "show the archived view")
	cmd.Flags().BoolVar(&trash, "trash", false, "show the trash view")
	return cmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Case-insensitive substring search over title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			printNotes(a.engine.Store().Search(args[0]))
			return nil
		},
	}
}

func newNewCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note from the composer",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			sess := session.NewCreate()
			if err := sess.Focus(0); err != nil {
				return err
			}
			if title != "" {
				if err := sess.WriteTitle(title); err != nil {
					return err
				}
			}
			if content != "" {
				if err := sess.WriteContent(content); err != nil {
					return err
				}
			}

			created, err := a.engine.CommitCreate(cmd.Context(), sess)
			a.flushNotice()
			if err != nil {
				return err
			}
			if created != nil {
				fmt.Printf("created %s\n", created.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "note content")
	return cmd
}

func newEditCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note's title and/or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			snapshot, ok := a.engine.Store().Get(args[0])
			if !ok {
				return fmt.Errorf("no note with id %s", args[0])
			}

			sess := session.NewRead(snapshot)
			if err := sess.Focus(0); err != nil {
				a.engine.Notices().Push(err.Error())
				a.flushNotice()
				return err
			}
			if cmd.Flags().Changed("title") {
				if err := sess.WriteTitle(title); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("content") {
				if err := sess.WriteContent(content); err != nil {
					return err
				}
			}

			err = a.engine.CommitEdit(cmd.Context(), sess)
			a.flushNotice()
			return err
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	return cmd
}

func newToggleCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			if name == "pin" {
				err = a.engine.TogglePin(cmd.Context(), args[0])
			} else {
				err = a.engine.ToggleArchive(cmd.Context(), args[0])
			}
			a.flushNotice()
			return err
		},
	}
}

func newTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash <id>",
		Short: "Move a note to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			err = a.engine.MoveToTrash(cmd.Context(), args[0])
			a.flushNotice()
			return err
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a note from the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			err = a.engine.Restore(cmd.Context(), args[0])
			a.flushNotice()
			return err
		},
	}
}

func newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge <id>",
		Short: "Permanently delete a trashed note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			err = a.engine.HardDelete(cmd.Context(), args[0])
			a.flushNotice()
			return err
		},
	}
}

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <default|red|yellow|green|blue>",
		Short: "Set a note's background color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, ok := colorNames[strings.ToLower(args[1])]
			if !ok {
				return fmt.Errorf("unknown color %q", args[1])
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			err = a.engine.SetColor(cmd.Context(), args[0], color)
			a.flushNotice()
			return err
		},
	}
}

func newRemindCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "remind <id> [RFC3339 time]",
		Short: "Set or clear a note's reminder",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			if clear {
				err = a.engine.ClearReminder(cmd.Context(), args[0])
				a.flushNotice()
				return err
			}

			if len(args) < 2 {
				return fmt.Errorf("provide a time or --clear")
			}
			at, perr := time.Parse(time.RFC3339, args[1])
			if perr != nil {
				return fmt.Errorf("could not parse time: %w", perr)
			}

			err = a.engine.SetReminder(cmd.Context(), args[0], at.UTC().UnixMilli())
			a.flushNotice()
			return err
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "remove the reminder")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in against the identity provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			provider, tokens, err := buildIdentity(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := provider.SignIn(cmd.Context(), email, password); err != nil {
				return err
			}
			if tokens != nil {
				if token, terr := tokens.Token(); terr == nil {
					fmt.Println(token)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func printNotes(notes []*entity.Note) {
	if len(notes) == 0 {
		fmt.Println("no notes")
		return
	}
	for _, n := range notes {
		flags := make([]string, 0, 3)
		if n.Pinned {
			flags = append(flags, "pinned")
		}
		if n.Archived {
			flags = append(flags, "archived")
		}
		if n.Trashed {
			flags = append(flags, "trash")
		}
		created := "-"
		if n.Persisted() {
			created = entity.FormatEpoch(n.CreatedAt)
		}

		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%-22s  %-30s  %-20s  %s\n", n.ID, truncate(title, 30), created, strings.Join(flags, ","))
		if n.Content != "" {
			fmt.Printf("    %s\n", truncate(n.Content, 72))
		}
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
