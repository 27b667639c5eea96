package service

import (
	"context"
	"fmt"

	"persondesk/internal/records/state"
	"persondesk/pkg/platform/sentinel"
)

// RemoveOfficial drops the draft official with the given key. A row the
// backend already knows is soft-deleted there first; a draft-only row is
// removed locally and counts as an unsaved change.
func (s *Service) RemoveOfficial(ctx context.Context, key int) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	row, ok := s.store.State().Official(key)
	if !ok {
		return fmt.Errorf("official row %d: %w", key, sentinel.ErrNotFound)
	}
	oid, persisted := row.OfficialID()
	if !persisted {
		s.store.Dispatch(state.RemoveOfficial{Key: key})
		return nil
	}

	err = s.api.SoftDeleteOfficial(ctx, oid, row.Input())
	s.childResult(ctx, KindOfficial, OpSoftDelete, int64(oid), row.Name, err)
	if err != nil {
		s.toast(state.MessageError, "Failed to delete related official: "+err.Error())
		return err
	}
	s.store.Dispatch(state.OfficialSoftDeleted{Key: key})
	s.toast(state.MessageSuccess, "Successfully deleted related official")
	return nil
}

// RemoveBankDetail drops the draft bank detail with the given key, the same
// way as RemoveOfficial.
func (s *Service) RemoveBankDetail(ctx context.Context, key int) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	row, ok := s.store.State().BankDetail(key)
	if !ok {
		return fmt.Errorf("bank details row %d: %w", key, sentinel.ErrNotFound)
	}
	bid, persisted := row.BankDetailID()
	if !persisted {
		s.store.Dispatch(state.RemoveBankDetail{Key: key})
		return nil
	}

	err = s.api.SoftDeleteBankDetail(ctx, bid)
	s.childResult(ctx, KindBankDetail, OpSoftDelete, int64(bid), row.AccountDetails, err)
	if err != nil {
		s.toast(state.MessageError, "Failed to delete bank details: "+err.Error())
		return err
	}
	s.store.Dispatch(state.BankDetailSoftDeleted{Key: key})
	s.toast(state.MessageSuccess, "Successfully deleted bank details record")
	return nil
}
