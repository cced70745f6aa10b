// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/crewforge/crewd/ent/activityevent"
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/ent/approval"
	"github.com/crewforge/crewd/ent/chatchannel"
	"github.com/crewforge/crewd/ent/chatmessage"
	"github.com/crewforge/crewd/ent/credential"
	"github.com/crewforge/crewd/ent/credittransaction"
	"github.com/crewforge/crewd/ent/event"
	"github.com/crewforge/crewd/ent/goal"
	"github.com/crewforge/crewd/ent/kbchunk"
	"github.com/crewforge/crewd/ent/kbdocument"
	"github.com/crewforge/crewd/ent/measurablegoal"
	"github.com/crewforge/crewd/ent/meeting"
	"github.com/crewforge/crewd/ent/meetingmessage"
	"github.com/crewforge/crewd/ent/memory"
	"github.com/crewforge/crewd/ent/notification"
	"github.com/crewforge/crewd/ent/schema"
	"github.com/crewforge/crewd/ent/sorpermission"
	"github.com/crewforge/crewd/ent/sorrow"
	"github.com/crewforge/crewd/ent/sortable"
	"github.com/crewforge/crewd/ent/subscription"
	"github.com/crewforge/crewd/ent/task"
	"github.com/crewforge/crewd/ent/team"
	"github.com/crewforge/crewd/ent/teammember"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescSummary is the schema descriptor for summary field.
	activityeventDescSummary := activityeventFields[3].Descriptor()
	// activityevent.DefaultSummary holds the default value on creation for the summary field.
	activityevent.DefaultSummary = activityeventDescSummary.Default.(string)
	// activityeventDescCreatedAt is the schema descriptor for created_at field.
	activityeventDescCreatedAt := activityeventFields[5].Descriptor()
	// activityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityevent.DefaultCreatedAt = activityeventDescCreatedAt.Default.(func() time.Time)
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[2].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescModelID is the schema descriptor for model_id field.
	agentDescModelID := agentFields[5].Descriptor()
	// agent.DefaultModelID holds the default value on creation for the model_id field.
	agent.DefaultModelID = agentDescModelID.Default.(string)
	// agentDescSystemPrompt is the schema descriptor for system_prompt field.
	agentDescSystemPrompt := agentFields[8].Descriptor()
	// agent.DefaultSystemPrompt holds the default value on creation for the system_prompt field.
	agent.DefaultSystemPrompt = agentDescSystemPrompt.Default.(string)
	// agentDescProactive is the schema descriptor for proactive field.
	agentDescProactive := agentFields[10].Descriptor()
	// agent.DefaultProactive holds the default value on creation for the proactive field.
	agent.DefaultProactive = agentDescProactive.Default.(bool)
	// agentDescHeartbeatSeconds is the schema descriptor for heartbeat_seconds field.
	agentDescHeartbeatSeconds := agentFields[11].Descriptor()
	// agent.DefaultHeartbeatSeconds holds the default value on creation for the heartbeat_seconds field.
	agent.DefaultHeartbeatSeconds = agentDescHeartbeatSeconds.Default.(int)
	// agent.HeartbeatSecondsValidator is a validator for the "heartbeat_seconds" field. It is called by the builders before save.
	agent.HeartbeatSecondsValidator = func() func(int) error {
		validators := agentDescHeartbeatSeconds.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(heartbeat_seconds int) error {
			for _, fn := range fns {
				if err := fn(heartbeat_seconds); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescActiveHoursStart is the schema descriptor for active_hours_start field.
	agentDescActiveHoursStart := agentFields[12].Descriptor()
	// agent.DefaultActiveHoursStart holds the default value on creation for the active_hours_start field.
	agent.DefaultActiveHoursStart = agentDescActiveHoursStart.Default.(int)
	// agent.ActiveHoursStartValidator is a validator for the "active_hours_start" field. It is called by the builders before save.
	agent.ActiveHoursStartValidator = func() func(int) error {
		validators := agentDescActiveHoursStart.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(active_hours_start int) error {
			for _, fn := range fns {
				if err := fn(active_hours_start); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescActiveHoursEnd is the schema descriptor for active_hours_end field.
	agentDescActiveHoursEnd := agentFields[13].Descriptor()
	// agent.DefaultActiveHoursEnd holds the default value on creation for the active_hours_end field.
	agent.DefaultActiveHoursEnd = agentDescActiveHoursEnd.Default.(int)
	// agent.ActiveHoursEndValidator is a validator for the "active_hours_end" field. It is called by the builders before save.
	agent.ActiveHoursEndValidator = func() func(int) error {
		validators := agentDescActiveHoursEnd.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(active_hours_end int) error {
			for _, fn := range fns {
				if err := fn(active_hours_end); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[15].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[16].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescActionDetail is the schema descriptor for action_detail field.
	approvalDescActionDetail := approvalFields[4].Descriptor()
	// approval.DefaultActionDetail holds the default value on creation for the action_detail field.
	approval.DefaultActionDetail = approvalDescActionDetail.Default.(string)
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[7].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	chatchannelFields := schema.ChatChannel{}.Fields()
	_ = chatchannelFields
	// chatchannelDescName is the schema descriptor for name field.
	chatchannelDescName := chatchannelFields[2].Descriptor()
	// chatchannel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	chatchannel.NameValidator = chatchannelDescName.Validators[0].(func(string) error)
	// chatchannelDescCreatedAt is the schema descriptor for created_at field.
	chatchannelDescCreatedAt := chatchannelFields[4].Descriptor()
	// chatchannel.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatchannel.DefaultCreatedAt = chatchannelDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescSenderID is the schema descriptor for sender_id field.
	chatmessageDescSenderID := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultSenderID holds the default value on creation for the sender_id field.
	chatmessage.DefaultSenderID = chatmessageDescSenderID.Default.(string)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescServiceID is the schema descriptor for service_id field.
	credentialDescServiceID := credentialFields[1].Descriptor()
	// credential.ServiceIDValidator is a validator for the "service_id" field. It is called by the builders before save.
	credential.ServiceIDValidator = credentialDescServiceID.Validators[0].(func(string) error)
	// credentialDescCredentialType is the schema descriptor for credential_type field.
	credentialDescCredentialType := credentialFields[2].Descriptor()
	// credential.DefaultCredentialType holds the default value on creation for the credential_type field.
	credential.DefaultCredentialType = credentialDescCredentialType.Default.(string)
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[4].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	// credentialDescUpdatedAt is the schema descriptor for updated_at field.
	credentialDescUpdatedAt := credentialFields[5].Descriptor()
	// credential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credential.DefaultUpdatedAt = credentialDescUpdatedAt.Default.(func() time.Time)
	// credential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credential.UpdateDefaultUpdatedAt = credentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	credittransactionFields := schema.CreditTransaction{}.Fields()
	_ = credittransactionFields
	// credittransactionDescCorrelationID is the schema descriptor for correlation_id field.
	credittransactionDescCorrelationID := credittransactionFields[3].Descriptor()
	// credittransaction.DefaultCorrelationID holds the default value on creation for the correlation_id field.
	credittransaction.DefaultCorrelationID = credittransactionDescCorrelationID.Default.(string)
	// credittransactionDescCreatedAt is the schema descriptor for created_at field.
	credittransactionDescCreatedAt := credittransactionFields[4].Descriptor()
	// credittransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	credittransaction.DefaultCreatedAt = credittransactionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescTitle is the schema descriptor for title field.
	goalDescTitle := goalFields[2].Descriptor()
	// goal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	goal.TitleValidator = goalDescTitle.Validators[0].(func(string) error)
	// goalDescDescription is the schema descriptor for description field.
	goalDescDescription := goalFields[3].Descriptor()
	// goal.DefaultDescription holds the default value on creation for the description field.
	goal.DefaultDescription = goalDescDescription.Default.(string)
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[6].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	// goalDescUpdatedAt is the schema descriptor for updated_at field.
	goalDescUpdatedAt := goalFields[7].Descriptor()
	// goal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	goal.DefaultUpdatedAt = goalDescUpdatedAt.Default.(func() time.Time)
	// goal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	goal.UpdateDefaultUpdatedAt = goalDescUpdatedAt.UpdateDefault.(func() time.Time)
	kbchunkFields := schema.KBChunk{}.Fields()
	_ = kbchunkFields
	// kbchunkDescTokenCount is the schema descriptor for token_count field.
	kbchunkDescTokenCount := kbchunkFields[4].Descriptor()
	// kbchunk.DefaultTokenCount holds the default value on creation for the token_count field.
	kbchunk.DefaultTokenCount = kbchunkDescTokenCount.Default.(int)
	kbdocumentFields := schema.KBDocument{}.Fields()
	_ = kbdocumentFields
	// kbdocumentDescFilename is the schema descriptor for filename field.
	kbdocumentDescFilename := kbdocumentFields[2].Descriptor()
	// kbdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	kbdocument.FilenameValidator = kbdocumentDescFilename.Validators[0].(func(string) error)
	// kbdocumentDescSummaryL0 is the schema descriptor for summary_l0 field.
	kbdocumentDescSummaryL0 := kbdocumentFields[5].Descriptor()
	// kbdocument.DefaultSummaryL0 holds the default value on creation for the summary_l0 field.
	kbdocument.DefaultSummaryL0 = kbdocumentDescSummaryL0.Default.(string)
	// kbdocumentDescSummaryL1 is the schema descriptor for summary_l1 field.
	kbdocumentDescSummaryL1 := kbdocumentFields[6].Descriptor()
	// kbdocument.DefaultSummaryL1 holds the default value on creation for the summary_l1 field.
	kbdocument.DefaultSummaryL1 = kbdocumentDescSummaryL1.Default.(string)
	// kbdocumentDescChunkCount is the schema descriptor for chunk_count field.
	kbdocumentDescChunkCount := kbdocumentFields[7].Descriptor()
	// kbdocument.DefaultChunkCount holds the default value on creation for the chunk_count field.
	kbdocument.DefaultChunkCount = kbdocumentDescChunkCount.Default.(int)
	// kbdocumentDescSizeBytes is the schema descriptor for size_bytes field.
	kbdocumentDescSizeBytes := kbdocumentFields[8].Descriptor()
	// kbdocument.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	kbdocument.DefaultSizeBytes = kbdocumentDescSizeBytes.Default.(int64)
	// kbdocumentDescCreatedAt is the schema descriptor for created_at field.
	kbdocumentDescCreatedAt := kbdocumentFields[10].Descriptor()
	// kbdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	kbdocument.DefaultCreatedAt = kbdocumentDescCreatedAt.Default.(func() time.Time)
	// kbdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	kbdocumentDescUpdatedAt := kbdocumentFields[11].Descriptor()
	// kbdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	kbdocument.DefaultUpdatedAt = kbdocumentDescUpdatedAt.Default.(func() time.Time)
	// kbdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	kbdocument.UpdateDefaultUpdatedAt = kbdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	measurablegoalFields := schema.MeasurableGoal{}.Fields()
	_ = measurablegoalFields
	// measurablegoalDescMetricName is the schema descriptor for metric_name field.
	measurablegoalDescMetricName := measurablegoalFields[2].Descriptor()
	// measurablegoal.MetricNameValidator is a validator for the "metric_name" field. It is called by the builders before save.
	measurablegoal.MetricNameValidator = measurablegoalDescMetricName.Validators[0].(func(string) error)
	// measurablegoalDescCurrentValue is the schema descriptor for current_value field.
	measurablegoalDescCurrentValue := measurablegoalFields[3].Descriptor()
	// measurablegoal.DefaultCurrentValue holds the default value on creation for the current_value field.
	measurablegoal.DefaultCurrentValue = measurablegoalDescCurrentValue.Default.(float64)
	// measurablegoalDescUnit is the schema descriptor for unit field.
	measurablegoalDescUnit := measurablegoalFields[5].Descriptor()
	// measurablegoal.DefaultUnit holds the default value on creation for the unit field.
	measurablegoal.DefaultUnit = measurablegoalDescUnit.Default.(string)
	// measurablegoalDescCreatedAt is the schema descriptor for created_at field.
	measurablegoalDescCreatedAt := measurablegoalFields[8].Descriptor()
	// measurablegoal.DefaultCreatedAt holds the default value on creation for the created_at field.
	measurablegoal.DefaultCreatedAt = measurablegoalDescCreatedAt.Default.(func() time.Time)
	// measurablegoalDescUpdatedAt is the schema descriptor for updated_at field.
	measurablegoalDescUpdatedAt := measurablegoalFields[9].Descriptor()
	// measurablegoal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	measurablegoal.DefaultUpdatedAt = measurablegoalDescUpdatedAt.Default.(func() time.Time)
	// measurablegoal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	measurablegoal.UpdateDefaultUpdatedAt = measurablegoalDescUpdatedAt.UpdateDefault.(func() time.Time)
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[8].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	meetingmessageFields := schema.MeetingMessage{}.Fields()
	_ = meetingmessageFields
	// meetingmessageDescSpeakerID is the schema descriptor for speaker_id field.
	meetingmessageDescSpeakerID := meetingmessageFields[3].Descriptor()
	// meetingmessage.DefaultSpeakerID holds the default value on creation for the speaker_id field.
	meetingmessage.DefaultSpeakerID = meetingmessageDescSpeakerID.Default.(string)
	// meetingmessageDescCreatedAt is the schema descriptor for created_at field.
	meetingmessageDescCreatedAt := meetingmessageFields[5].Descriptor()
	// meetingmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	meetingmessage.DefaultCreatedAt = meetingmessageDescCreatedAt.Default.(func() time.Time)
	memoryFields := schema.Memory{}.Fields()
	_ = memoryFields
	// memoryDescCreatedAt is the schema descriptor for created_at field.
	memoryDescCreatedAt := memoryFields[5].Descriptor()
	// memory.DefaultCreatedAt holds the default value on creation for the created_at field.
	memory.DefaultCreatedAt = memoryDescCreatedAt.Default.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescBody is the schema descriptor for body field.
	notificationDescBody := notificationFields[4].Descriptor()
	// notification.DefaultBody holds the default value on creation for the body field.
	notification.DefaultBody = notificationDescBody.Default.(string)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[7].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	sorpermissionFields := schema.SorPermission{}.Fields()
	_ = sorpermissionFields
	// sorpermissionDescCanRead is the schema descriptor for can_read field.
	sorpermissionDescCanRead := sorpermissionFields[3].Descriptor()
	// sorpermission.DefaultCanRead holds the default value on creation for the can_read field.
	sorpermission.DefaultCanRead = sorpermissionDescCanRead.Default.(bool)
	// sorpermissionDescCanWrite is the schema descriptor for can_write field.
	sorpermissionDescCanWrite := sorpermissionFields[4].Descriptor()
	// sorpermission.DefaultCanWrite holds the default value on creation for the can_write field.
	sorpermission.DefaultCanWrite = sorpermissionDescCanWrite.Default.(bool)
	sorrowFields := schema.SorRow{}.Fields()
	_ = sorrowFields
	// sorrowDescCreatedAt is the schema descriptor for created_at field.
	sorrowDescCreatedAt := sorrowFields[3].Descriptor()
	// sorrow.DefaultCreatedAt holds the default value on creation for the created_at field.
	sorrow.DefaultCreatedAt = sorrowDescCreatedAt.Default.(func() time.Time)
	// sorrowDescUpdatedAt is the schema descriptor for updated_at field.
	sorrowDescUpdatedAt := sorrowFields[4].Descriptor()
	// sorrow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sorrow.DefaultUpdatedAt = sorrowDescUpdatedAt.Default.(func() time.Time)
	// sorrow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sorrow.UpdateDefaultUpdatedAt = sorrowDescUpdatedAt.UpdateDefault.(func() time.Time)
	sortableFields := schema.SorTable{}.Fields()
	_ = sortableFields
	// sortableDescName is the schema descriptor for name field.
	sortableDescName := sortableFields[2].Descriptor()
	// sortable.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sortable.NameValidator = sortableDescName.Validators[0].(func(string) error)
	// sortableDescCreatedAt is the schema descriptor for created_at field.
	sortableDescCreatedAt := sortableFields[4].Descriptor()
	// sortable.DefaultCreatedAt holds the default value on creation for the created_at field.
	sortable.DefaultCreatedAt = sortableDescCreatedAt.Default.(func() time.Time)
	// sortableDescUpdatedAt is the schema descriptor for updated_at field.
	sortableDescUpdatedAt := sortableFields[5].Descriptor()
	// sortable.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sortable.DefaultUpdatedAt = sortableDescUpdatedAt.Default.(func() time.Time)
	// sortable.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sortable.UpdateDefaultUpdatedAt = sortableDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[4].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[2].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[3].Descriptor()
	// task.DefaultDescription holds the default value on creation for the description field.
	task.DefaultDescription = taskDescDescription.Default.(string)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[12].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[1].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = teamDescName.Validators[0].(func(string) error)
	// teamDescCreditsBalance is the schema descriptor for credits_balance field.
	teamDescCreditsBalance := teamFields[3].Descriptor()
	// team.DefaultCreditsBalance holds the default value on creation for the credits_balance field.
	team.DefaultCreditsBalance = teamDescCreditsBalance.Default.(int)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[4].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[5].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	teammemberFields := schema.TeamMember{}.Fields()
	_ = teammemberFields
	// teammemberDescCreatedAt is the schema descriptor for created_at field.
	teammemberDescCreatedAt := teammemberFields[3].Descriptor()
	// teammember.DefaultCreatedAt holds the default value on creation for the created_at field.
	teammember.DefaultCreatedAt = teammemberDescCreatedAt.Default.(func() time.Time)
}
