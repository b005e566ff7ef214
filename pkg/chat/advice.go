package chat

const greeting = `Hello! I'm your study assistant. I turn plain messages into tasks,
events, and study schedules.

Timetable creation:
  Custom daily/weekly study schedules
  Subject-wise time allocation
  Exam preparation timetables
  Balanced study routines with breaks

Goal-based timetable:
  Set short-term and long-term goals
  Get a generated study schedule
  Earn stars as you complete tasks
  Say 'Show me goal timetable' to get started

What I can do:
  Schedule tasks, exams, and events
  Mark tasks complete or remove them
  Set important dates
  Provide study tips and motivation

Try:
  'Create a weekly timetable for Math, Physics, English'
  'Make a study schedule from 2 PM to 8 PM'
  'Tomorrow I have English exam at 9:30 AM'
  'Create daily routine'

Just describe what you need.`

const studyTips = `Here are proven study strategies:

  1. Pomodoro technique: 25 min focus + 5 min break
  2. Active recall: test yourself instead of re-reading
  3. Spaced repetition: review at increasing intervals
  4. Teach others: the best way to solidify knowledge
  5. Stay hydrated: the brain needs water to function
  6. Sleep well: memory consolidation happens during sleep

Most students are sharpest mid-morning. Schedule the hard subjects then.`

const motivation = `You're doing great. Here's why:

  You're actively working on your goals right now
  Every small step counts toward success
  Progress isn't always visible but it's happening
  Taking breaks is productive too

Success is built one day at a time. You've got this.`

const examAdvice = `Exam preparation strategy:

2-3 weeks before:
  Review all topics
  Identify weak areas
  Make summary notes

1-2 weeks before:
  Practice problems daily
  Use active recall
  Join study groups

1 week before:
  Take mock tests
  Time yourself
  Review mistakes

2-3 days before:
  Light revision only
  Sleep well (8 hours)
  Stay calm and confident

Want a study schedule? Tell me your subjects and exam times.`

const helpText = `I can help you with:

  Add tasks:       'Schedule homework at 5 PM tomorrow'
  Mark dates:      'Make next Friday my special day'
  Add events:      'Add exam on December 1 at 9 AM'
  Create routines: 'Create a daily study plan'
  Delete tasks:    'Remove my morning task'
  Complete tasks:  'Mark homework as done'
  View sections:   'Show me my calendar'
  Get advice:      'Give me study tips'

Just talk naturally. What would you like to do?`
