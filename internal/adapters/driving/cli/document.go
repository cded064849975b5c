package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage uploaded documents",
	Long:  `List, view, or remove documents from the library.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print the document's extracted text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentRemoveCmd = &cobra.Command{
	Use:   "remove [doc-id]",
	Short: "Remove a document and its chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentRemove,
}

func init() {
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentRemoveCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	docs, err := libraryService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents in the library.")
		return nil
	}

	cmd.Println("Documents:")
	for i := range docs {
		cmd.Printf("  %s  %-30s %-10s %s\n",
			docs[i].ID, docs[i].Name, docs[i].Status, docs[i].CreatedAt.Format("2006-01-02 15:04"))
		if docs[i].Error != "" {
			cmd.Printf("      error: %s\n", docs[i].Error)
		}
	}
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	doc, err := libraryService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("getting document: %w", err)
	}

	cmd.Printf("ID:       %s\n", doc.ID)
	cmd.Printf("Name:     %s\n", doc.Name)
	cmd.Printf("Type:     %s\n", doc.MIMEType)
	cmd.Printf("Size:     %d bytes\n", doc.Size)
	cmd.Printf("Status:   %s\n", doc.Status)
	if doc.Error != "" {
		cmd.Printf("Error:    %s\n", doc.Error)
	}
	cmd.Printf("Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	content, err := libraryService.Content(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("getting document content: %w", err)
	}

	cmd.Println(content)
	return nil
}

func runDocumentRemove(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if err := libraryService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("removing document: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}
