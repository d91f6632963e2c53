package usecase

import (
	"context"
	"fmt"
	"log"
)

// removeStaleOutput deletes any drawing already attached to the quotation
// under fileName so a new render never produces a duplicate attachment.
//
// It never fails the caller: a missing or undeletable prior file is not a
// correctness problem for the dispatch that follows. Attempted deletions are
// recorded on the audit log either way.
func (u *TriggerRenderUseCase) removeStaleOutput(ctx context.Context, quotationID, fileName string) {
	files, err := u.directory.ListQuotationFiles(ctx, quotationID)
	if err != nil {
		log.Printf("[reconcile][usecase] list files failed quotation_id=%s err=%v", quotationID, err)
		u.audit(ctx, quotationID, fmt.Sprintf("Failed to remove existing drawing %s: %v", fileName, err))
		return
	}

	for _, file := range files {
		entity, err := u.directory.GetFileEntity(ctx, file.FileID)
		if err != nil {
			log.Printf("[reconcile][usecase] file entity lookup failed file_id=%s err=%v", file.FileID, err)
			u.audit(ctx, quotationID, fmt.Sprintf("Failed to remove existing drawing %s: %v", fileName, err))
			continue
		}
		if entity.Name != fileName {
			continue
		}

		if err := u.directory.DeleteFileEntity(ctx, file.FileID); err != nil {
			log.Printf("[reconcile][usecase] delete failed quotation_id=%s file_id=%s err=%v", quotationID, file.FileID, err)
			u.audit(ctx, quotationID, fmt.Sprintf("Failed to remove existing drawing %s: %v", fileName, err))
			continue
		}
		log.Printf("[reconcile][usecase] deleted stale drawing quotation_id=%s file_id=%s name=%s", quotationID, file.FileID, fileName)
		u.audit(ctx, quotationID, fmt.Sprintf("Removed existing drawing %s", fileName))
	}
}
